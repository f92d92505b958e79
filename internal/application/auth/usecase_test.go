package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loja-app/loja-api/internal/application/auth"
	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/domain"
	"github.com/loja-app/loja-api/internal/domain/entity"
	pkgjwt "github.com/loja-app/loja-api/pkg/jwt"
)

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario // por email
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	f.usuarios[u.Email] = u
	return nil
}
func (f *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return f.usuarios[email], nil
}

func novoUseCase() (*auth.UseCase, *fakeUsuarioRepo) {
	repo := &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{}}
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "segredo-de-teste",
		ExpMinutes: 60,
		Issuer:     "loja-api-test",
	})
	return uc, repo
}

func TestRegister_PapelDefaultVendedor(t *testing.T) {
	uc, repo := novoUseCase()

	out, err := uc.Register(dto.RegisterRequest{Email: "joao@loja.com", Password: "senha123"})
	require.NoError(t, err)

	assert.Equal(t, entity.PapelVendedor, out.Papel, "sem papel informado, o default é vendedor")
	assert.Equal(t, "joao@loja.com", out.Nome, "sem nome, usa o e-mail")

	persistido := repo.usuarios["joao@loja.com"]
	require.NotNil(t, persistido)
	assert.True(t, persistido.Ativo)
	assert.NotEqual(t, "senha123", persistido.PasswordHash, "a senha nunca é gravada em claro")
}

func TestRegister_EmailJaCadastrado(t *testing.T) {
	uc, _ := novoUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "joao@loja.com", Password: "senha123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "joao@loja.com", Password: "outra"})
	assert.ErrorIs(t, err, domain.ErrEmailJaCadastrado)
}

func TestRegister_SemCredenciais(t *testing.T) {
	uc, _ := novoUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TokenCarregaPapel(t *testing.T) {
	uc, _ := novoUseCase()

	_, err := uc.Register(dto.RegisterRequest{
		Email: "admin@loja.com", Password: "senha123", Papel: entity.PapelAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@loja.com", Password: "senha123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, papel, err := pkgjwt.Parse("segredo-de-teste", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Usuario.ID, userID)
	assert.Equal(t, entity.PapelAdmin, papel)
}

func TestLogin_SenhaIncorreta(t *testing.T) {
	uc, _ := novoUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "joao@loja.com", Password: "senha123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "joao@loja.com", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := novoUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@loja.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNaoEncontrado)
}

func TestLogin_UsuarioInativo(t *testing.T) {
	uc, repo := novoUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "joao@loja.com", Password: "senha123"})
	require.NoError(t, err)
	repo.usuarios["joao@loja.com"].Ativo = false

	_, err = uc.Login(dto.LoginRequest{Email: "joao@loja.com", Password: "senha123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
