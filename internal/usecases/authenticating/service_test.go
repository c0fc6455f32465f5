package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/attribution-engine-api/infrastructure/repository/mocks"
	"github.com/vfg2006/attribution-engine-api/internal/config"
	"github.com/vfg2006/attribution-engine-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{
		userRepo: mockUserRepo,
		cfg:      testConfig(),
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(t *testing.T)
		wantErr  error
	}{
		{
			name:     "Credenciais válidas geram token",
			email:    "Admin@Localhost ",
			password: "admin123",
			setup: func(t *testing.T) {
				// O email é normalizado antes da consulta
				mockUserRepo.EXPECT().
					GetUserByEmail("admin@localhost").
					Return(&domain.User{
						ID:           1,
						Name:         "Admin",
						Email:        "admin@localhost",
						PasswordHash: hashPassword(t, "admin123"),
						Active:       true,
						RoleID:       1,
					}, nil)
			},
			wantErr: nil,
		},
		{
			name:     "Email vazio é rejeitado sem consultar o banco",
			email:    "",
			password: "admin123",
			setup:    func(t *testing.T) {},
			wantErr:  ErrMissingRequiredData,
		},
		{
			name:     "Usuário inexistente",
			email:    "ghost@localhost",
			password: "admin123",
			setup: func(t *testing.T) {
				mockUserRepo.EXPECT().GetUserByEmail("ghost@localhost").Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:     "Conta desativada",
			email:    "inactive@localhost",
			password: "admin123",
			setup: func(t *testing.T) {
				mockUserRepo.EXPECT().
					GetUserByEmail("inactive@localhost").
					Return(&domain.User{
						ID:           2,
						Email:        "inactive@localhost",
						PasswordHash: hashPassword(t, "admin123"),
						Active:       false,
					}, nil)
			},
			wantErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "admin@localhost",
			password: "senha-errada",
			setup: func(t *testing.T) {
				mockUserRepo.EXPECT().
					GetUserByEmail("admin@localhost").
					Return(&domain.User{
						ID:           1,
						Email:        "admin@localhost",
						PasswordHash: hashPassword(t, "admin123"),
						Active:       true,
					}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			token, err := service.LoginUser(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			// O token gerado deve ser aceito pela própria validação
			claims, err := service.ValidateToken(token)
			assert.NoError(t, err)
			assert.Equal(t, 1, claims.UserID)
			assert.Equal(t, "admin@localhost", claims.UserEmail)
			assert.Equal(t, 1, claims.UserRoleID)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := &Service{cfg: testConfig()}

	t.Run("Token malformado é rejeitado", func(t *testing.T) {
		_, err := service.ValidateToken("nao-e-um-jwt")
		assert.Error(t, err)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		other := &Service{cfg: &config.Config{Auth: config.Auth{Secret: "outro-segredo"}}}

		token, err := generateJWT(&domain.User{ID: 1, Email: "admin@localhost", Active: true}, "outro-segredo")
		assert.NoError(t, err)

		// Válido para quem assinou
		_, err = other.ValidateToken(token)
		assert.NoError(t, err)

		// Inválido para o segredo configurado
		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{userRepo: mockUserRepo, cfg: testConfig()}

	t.Run("Perfil sai sem o hash de senha", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, Name: "Admin", PasswordHash: "hash-sensivel"}, nil)

		user, err := service.GetUserProfile(1)

		assert.NoError(t, err)
		assert.Equal(t, "Admin", user.Name)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Erro do repositório é propagado", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(2).Return(nil, errors.New("conexão recusada"))

		_, err := service.GetUserProfile(2)
		assert.Error(t, err)
	})
}

func TestHandleEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Maiúsculas viram minúsculas",
			input:    "Admin@Localhost",
			expected: "admin@localhost",
		},
		{
			name:     "Espaços nas bordas e no meio são removidos",
			input:    "  admin @localhost  ",
			expected: "admin@localhost",
		},
		{
			name:     "Email já normalizado fica intacto",
			input:    "admin@localhost",
			expected: "admin@localhost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, handleEmail(tt.input))
		})
	}
}
