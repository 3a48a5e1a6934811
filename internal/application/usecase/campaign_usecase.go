package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/agency-pro/internal/application/dto"
	"github.com/tu-usuario/agency-pro/internal/domain"
	"github.com/tu-usuario/agency-pro/internal/domain/authz"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
	"github.com/tu-usuario/agency-pro/internal/domain/repository"
)

// CampaignUseCase casos de uso de campañas.
type CampaignUseCase struct {
	campaignRepo repository.CampaignRepository
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
}

// NewCampaignUseCase construye el caso de uso con sus puertos.
func NewCampaignUseCase(campaignRepo repository.CampaignRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) *CampaignUseCase {
	return &CampaignUseCase{campaignRepo: campaignRepo, postRepo: postRepo, userRepo: userRepo}
}

// List lista las campañas visibles para el actor con manager y cliente unidos.
// El filtrado (todas; gestionadas por el actor; o revisadas por el actor si es
// cliente) lo decide ScopeFilter, la única definición del alcance de listados.
func (uc *CampaignUseCase) List(actor dto.Actor) ([]dto.CampaignResponse, error) {
	az := actorOf(actor)
	if err := authz.CanPerform(az, authz.ActionListCampaigns, authz.Target{}); err != nil {
		return nil, err
	}
	scope, err := authz.ScopeFilter(az, authz.KindCampaigns)
	if err != nil {
		return nil, err
	}
	summaries, err := uc.campaignRepo.ListScoped(scope)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CampaignResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, summaryToResponse(s))
	}
	return out, nil
}

// Get devuelve una campaña con todos sus posts.
func (uc *CampaignUseCase) Get(actor dto.Actor, id entity.ID) (*dto.CampaignResponse, error) {
	c, err := uc.campaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	az := actorOf(actor)
	err = authz.CanPerform(az, authz.ActionViewCampaign, authz.Target{Campaign: &authz.CampaignTarget{
		ManagerID: c.ManagerID,
		ClientID:  c.UserID,
	}})
	if err != nil {
		return nil, err
	}
	posts, err := uc.postRepo.ListByCampaign(id)
	if err != nil {
		return nil, err
	}
	resp := campaignToResponse(c)
	resp.Posts = make([]dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		resp.Posts = append(resp.Posts, toPostResponse(p))
	}
	return &resp, nil
}

// Create crea una campaña. Manager y cliente deben existir (invariante del
// modelo: una campaña siempre referencia usuarios reales); no hay chequeo de
// pertenencia sobre el managerId indicado.
func (uc *CampaignUseCase) Create(actor dto.Actor, in dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	az := actorOf(actor)
	if err := authz.CanPerform(az, authz.ActionCreateCampaign, authz.Target{}); err != nil {
		return nil, err
	}
	manager, err := uc.userRepo.GetByID(in.ManagerID)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, domain.ErrUserNotFound
	}
	clientUser, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if clientUser == nil {
		return nil, domain.ErrUserNotFound
	}
	now := time.Now()
	c := &entity.Campaign{
		ID:        entity.NewID(uuid.New().String()),
		Name:      in.Name,
		Client:    in.Client,
		ManagerID: in.ManagerID,
		UserID:    in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.campaignRepo.Create(c); err != nil {
		return nil, err
	}
	resp := campaignToResponse(c)
	return &resp, nil
}

// ListForClient lista las campañas revisadas por un usuario cliente concreto,
// cada una con sus posts (vista del portal del cliente).
func (uc *CampaignUseCase) ListForClient(userID entity.ID) ([]dto.CampaignResponse, error) {
	summaries, err := uc.campaignRepo.ListScoped(authz.Scope{ClientID: userID})
	if err != nil {
		return nil, err
	}
	out := make([]dto.CampaignResponse, 0, len(summaries))
	for _, s := range summaries {
		resp := summaryToResponse(s)
		posts, err := uc.postRepo.ListByCampaign(s.Campaign.ID)
		if err != nil {
			return nil, err
		}
		resp.Posts = make([]dto.PostResponse, 0, len(posts))
		for _, p := range posts {
			resp.Posts = append(resp.Posts, toPostResponse(p))
		}
		out = append(out, resp)
	}
	return out, nil
}

func campaignToResponse(c *entity.Campaign) dto.CampaignResponse {
	return dto.CampaignResponse{
		ID:        c.ID,
		Name:      c.Name,
		Client:    c.Client,
		ManagerID: c.ManagerID,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func summaryToResponse(s *repository.CampaignSummary) dto.CampaignResponse {
	resp := campaignToResponse(&s.Campaign)
	resp.Manager = &dto.CampaignUser{Name: s.ManagerName, Email: s.ManagerEmail}
	resp.ClientUser = &dto.CampaignUser{Name: s.ClientName, Email: s.ClientEmail}
	return resp
}
