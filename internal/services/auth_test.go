package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/vmaslov2018/course-api/internal/models"
	"github.com/vmaslov2018/course-api/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		email        string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:    "successful registration",
			email:   "joe@example.com",
			wantErr: nil,
		},
		{
			name:         "email already exists on fast path",
			email:        "taken@example.com",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrEmailAlreadyExists,
		},
		{
			name:      "unique violation on insert maps to conflict",
			email:     "raced@example.com",
			writerErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantErr:   services.ErrEmailAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "joe@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "joe@example.com",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), "Joe", "Smith", tt.email, gomock.Any()).
					Return(tt.writerErr)
			}

			err := svc.Register(context.Background(), "Joe", "Smith", tt.email, "secret")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Register_StoresBcryptHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter)

	mockReader.EXPECT().
		GetByEmail(gomock.Any(), "joe@example.com").
		Return(nil, nil)

	var storedHash string
	mockWriter.EXPECT().
		Save(gomock.Any(), "Joe", "Smith", "joe@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _, passwordHash string) error {
			storedHash = passwordHash
			return nil
		})

	err := svc.Register(context.Background(), "Joe", "Smith", "joe@example.com", "secret")
	assert.NoError(t, err)

	// Never the plaintext, and verifiable against it.
	assert.NotEqual(t, "secret", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret")))
}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := &models.UserDB{
		UserID:       uuid.New(),
		FirstName:    "Joe",
		LastName:     "Smith",
		Email:        "joe@example.com",
		PasswordHash: string(hashed),
	}

	tests := []struct {
		name      string
		password  string
		user      *models.UserDB
		readerErr error
		wantUser  bool
		wantErr   error
	}{
		{
			name:     "valid credentials",
			password: password,
			user:     user,
			wantUser: true,
		},
		{
			name:     "unknown email",
			password: password,
			user:     nil,
			wantErr:  services.ErrUserDoesNotExist,
		},
		{
			name:     "wrong password",
			password: "not-the-password",
			user:     user,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			password:  password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), "joe@example.com").
				Return(tt.user, tt.readerErr)

			got, err := svc.Authenticate(context.Background(), "joe@example.com", tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				if assert.True(t, tt.wantUser == (got != nil)) {
					assert.Equal(t, user.UserID, got.UserID)
				}
			}
		})
	}
}
