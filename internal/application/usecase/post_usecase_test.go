package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/agency-pro/internal/application/dto"
	"github.com/tu-usuario/agency-pro/internal/application/usecase"
	"github.com/tu-usuario/agency-pro/internal/domain"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────

func seedCampaign(repo *memCampaignRepo, id string, manager, client entity.ID) *entity.Campaign {
	now := time.Now()
	c := entity.Campaign{
		ID:        entity.NewID(id),
		Name:      "Campaña " + id,
		Client:    "Marca " + id,
		ManagerID: manager,
		UserID:    client,
		CreatedAt: now,
		UpdatedAt: now,
	}
	repo.campaigns[c.ID] = c
	return &c
}

func seedPost(repo *memPostRepo, id string, campaign entity.ID) *entity.Post {
	now := time.Now()
	p := entity.Post{
		ID:          entity.NewID(id),
		CampaignID:  campaign,
		Title:       "Post " + id,
		TopicStatus: entity.TopicPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	repo.posts[p.ID] = p
	return &p
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────
// Flujo de aprobación: tema primero, esquema cuando el staff lo abre
// ──────────────────────────────────────────────

func TestPostUseCase_FlujoTemaLuegoEsquema(t *testing.T) {
	users := newMemUserRepo()
	campaigns := newMemCampaignRepo(users)
	posts := newMemPostRepo()
	uc := usecase.NewPostUseCase(posts, campaigns)

	admin := seedUser(users, "admin", "agencyadmin", "admin@agencia.com", "")
	cliente := seedUser(users, "cli", "client", "cli@cliente.com", admin.ID)
	camp := seedCampaign(campaigns, "camp1", admin.ID, cliente.ID)
	post := seedPost(posts, "p1", camp.ID)

	clienteActor := actorFor(cliente)

	// El cliente aprueba el tema.
	resp, err := uc.Review(clienteActor, post.ID, dto.ReviewPostRequest{TopicStatus: strPtr("approved")})
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.TopicStatus)
	assert.Nil(t, resp.OutlineStatus, "el esquema no entra a revisión solo porque el tema se aprobó")

	// Revisar el esquema antes de que el staff lo abra es una transición inválida.
	_, err = uc.Review(clienteActor, post.ID, dto.ReviewPostRequest{OutlineStatus: strPtr("approved")})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// El staff redacta el esquema y lo abre a revisión por la vía administrativa.
	staffActor := actorFor(admin)
	resp, err = uc.Administer(staffActor, post.ID, dto.AdministerPostRequest{
		Outline:       strPtr("1. Introducción\n2. Desarrollo\n3. Cierre"),
		OutlineStatus: strPtr("pending"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.OutlineStatus)
	assert.Equal(t, "pending", *resp.OutlineStatus)

	// Ahora sí el cliente puede aprobar el esquema.
	resp, err = uc.Review(clienteActor, post.ID, dto.ReviewPostRequest{OutlineStatus: strPtr("approved")})
	require.NoError(t, err)
	require.NotNil(t, resp.OutlineStatus)
	assert.Equal(t, "approved", *resp.OutlineStatus)
}

func TestPostUseCase_RechazoSinMotivoNoPersisteNada(t *testing.T) {
	users := newMemUserRepo()
	campaigns := newMemCampaignRepo(users)
	posts := newMemPostRepo()
	uc := usecase.NewPostUseCase(posts, campaigns)

	admin := seedUser(users, "admin", "agencyadmin", "admin@agencia.com", "")
	cliente := seedUser(users, "cli", "client", "cli@cliente.com", admin.ID)
	camp := seedCampaign(campaigns, "camp1", admin.ID, cliente.ID)
	post := seedPost(posts, "p1", camp.ID)

	_, err := uc.Review(actorFor(cliente), post.ID, dto.ReviewPostRequest{TopicStatus: strPtr("rejected")})
	assert.ErrorIs(t, err, domain.ErrMissingReason)

	guardado, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TopicPending, guardado.TopicStatus)
	assert.Nil(t, guardado.RejectReason)
}

// ──────────────────────────────────────────────
// El cliente solo revisa posts de sus propias campañas
// ──────────────────────────────────────────────

func TestPostUseCase_ClienteNoRevisaCampanaAjena(t *testing.T) {
	users := newMemUserRepo()
	campaigns := newMemCampaignRepo(users)
	posts := newMemPostRepo()
	uc := usecase.NewPostUseCase(posts, campaigns)

	admin := seedUser(users, "admin", "agencyadmin", "admin@agencia.com", "")
	duena := seedUser(users, "cli1", "client", "cli1@cliente.com", admin.ID)
	intrusa := seedUser(users, "cli2", "client", "cli2@cliente.com", admin.ID)
	camp := seedCampaign(campaigns, "camp1", admin.ID, duena.ID)
	post := seedPost(posts, "p1", camp.ID)

	_, err := uc.Review(actorFor(intrusa), post.ID, dto.ReviewPostRequest{TopicStatus: strPtr("approved")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El post queda como estaba.
	guardado, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TopicPending, guardado.TopicStatus)
}

func TestPostUseCase_StaffNoUsaLaViaDeRevision(t *testing.T) {
	users := newMemUserRepo()
	campaigns := newMemCampaignRepo(users)
	posts := newMemPostRepo()
	uc := usecase.NewPostUseCase(posts, campaigns)

	admin := seedUser(users, "admin", "agencyadmin", "admin@agencia.com", "")
	cliente := seedUser(users, "cli", "client", "cli@cliente.com", admin.ID)
	camp := seedCampaign(campaigns, "camp1", admin.ID, cliente.ID)
	post := seedPost(posts, "p1", camp.ID)

	_, err := uc.Review(actorFor(admin), post.ID, dto.ReviewPostRequest{TopicStatus: strPtr("approved")})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────
// Creación y sobrescritura administrativa
// ──────────────────────────────────────────────

func TestPostUseCase_CrearEnCampanaInexistente(t *testing.T) {
	users := newMemUserRepo()
	campaigns := newMemCampaignRepo(users)
	posts := newMemPostRepo()
	uc := usecase.NewPostUseCase(posts, campaigns)

	admin := seedUser(users, "admin", "agencyadmin", "admin@agencia.com", "")

	_, err := uc.Create(actorFor(admin), entity.NewID("fantasma"), dto.CreatePostRequest{Title: "Sin campaña"})
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestPostUseCase_CrearPostArrancaPendiente(t *testing.T) {
	users := newMemUserRepo()
	campaigns := newMemCampaignRepo(users)
	posts := newMemPostRepo()
	uc := usecase.NewPostUseCase(posts, campaigns)

	admin := seedUser(users, "admin", "agencyadmin", "admin@agencia.com", "")
	cliente := seedUser(users, "cli", "client", "cli@cliente.com", admin.ID)
	camp := seedCampaign(campaigns, "camp1", admin.ID, cliente.ID)

	resp, err := uc.Create(actorFor(admin), camp.ID, dto.CreatePostRequest{Title: "Tendencias 2026"})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.TopicStatus)
	assert.Nil(t, resp.OutlineStatus)
	assert.Nil(t, resp.Outline)
}

func TestPostUseCase_AdministerSobrescribeEstados(t *testing.T) {
	users := newMemUserRepo()
	campaigns := newMemCampaignRepo(users)
	posts := newMemPostRepo()
	uc := usecase.NewPostUseCase(posts, campaigns)

	admin := seedUser(users, "admin", "agencyadmin", "admin@agencia.com", "")
	cliente := seedUser(users, "cli", "client", "cli@cliente.com", admin.ID)
	camp := seedCampaign(campaigns, "camp1", admin.ID, cliente.ID)
	post := seedPost(posts, "p1", camp.ID)

	// La vía administrativa escribe los estados tal cual, sin transición previa.
	resp, err := uc.Administer(actorFor(admin), post.ID, dto.AdministerPostRequest{
		TopicStatus:  strPtr("approved"),
		PublishedURL: strPtr("https://blog.cliente.com/tendencias"),
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.TopicStatus)
	require.NotNil(t, resp.PublishedURL)
	assert.Equal(t, "https://blog.cliente.com/tendencias", *resp.PublishedURL)

	// El cliente no puede usar la vía administrativa.
	_, err = uc.Administer(actorFor(cliente), post.ID, dto.AdministerPostRequest{TopicStatus: strPtr("pending")})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPostUseCase_DeletePorRoles(t *testing.T) {
	users := newMemUserRepo()
	campaigns := newMemCampaignRepo(users)
	posts := newMemPostRepo()
	uc := usecase.NewPostUseCase(posts, campaigns)

	admin := seedUser(users, "admin", "agencyadmin", "admin@agencia.com", "")
	cliente := seedUser(users, "cli", "client", "cli@cliente.com", admin.ID)
	camp := seedCampaign(campaigns, "camp1", admin.ID, cliente.ID)
	post := seedPost(posts, "p1", camp.ID)

	err := uc.Delete(actorFor(cliente), post.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.Delete(actorFor(admin), post.ID))
	borrado, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Nil(t, borrado)
}
