package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/agency-pro/internal/application/dto"
	"github.com/tu-usuario/agency-pro/internal/domain"
	"github.com/tu-usuario/agency-pro/internal/domain/approval"
	"github.com/tu-usuario/agency-pro/internal/domain/authz"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
	"github.com/tu-usuario/agency-pro/internal/domain/repository"
)

// PostUseCase casos de uso de posts: creación, sobrescritura administrativa,
// revisión del cliente y borrado.
type PostUseCase struct {
	postRepo     repository.PostRepository
	campaignRepo repository.CampaignRepository
}

// NewPostUseCase construye el caso de uso con sus puertos.
func NewPostUseCase(postRepo repository.PostRepository, campaignRepo repository.CampaignRepository) *PostUseCase {
	return &PostUseCase{postRepo: postRepo, campaignRepo: campaignRepo}
}

// Create crea un post en estado de tema pendiente dentro de una campaña existente.
func (uc *PostUseCase) Create(actor dto.Actor, campaignID entity.ID, in dto.CreatePostRequest) (*dto.PostResponse, error) {
	az := actorOf(actor)
	if err := authz.CanPerform(az, authz.ActionCreatePost, authz.Target{}); err != nil {
		return nil, err
	}
	campaign, err := uc.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.ErrCampaignNotFound
	}
	now := time.Now()
	post := &entity.Post{
		ID:          entity.NewID(uuid.New().String()),
		CampaignID:  campaignID,
		Title:       in.Title,
		TopicStatus: entity.TopicPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.postRepo.Create(post); err != nil {
		return nil, err
	}
	resp := toPostResponse(post)
	return &resp, nil
}

// Administer aplica la sobrescritura administrativa del staff: los campos
// informados se escriben tal cual, estados incluidos, sin pasar por la máquina
// de estados. Es la vía de back-office documentada, distinta de Review.
func (uc *PostUseCase) Administer(actor dto.Actor, id entity.ID, in dto.AdministerPostRequest) (*dto.PostResponse, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	az := actorOf(actor)
	if err := authz.CanPerform(az, authz.ActionUpdatePost, authz.Target{}); err != nil {
		return nil, err
	}
	req := approval.AdministerRequest{
		Title:        in.Title,
		Outline:      in.Outline,
		PublishedURL: in.PublishedURL,
	}
	if in.TopicStatus != nil {
		s := entity.TopicStatus(*in.TopicStatus)
		req.TopicStatus = &s
	}
	if in.OutlineStatus != nil {
		s := entity.OutlineStatus(*in.OutlineStatus)
		req.OutlineStatus = &s
	}
	updated := approval.Administer(*post, req)
	updated.UpdatedAt = time.Now()
	if err := uc.postRepo.Update(&updated); err != nil {
		return nil, err
	}
	resp := toPostResponse(&updated)
	return &resp, nil
}

// Review ejecuta la revisión del cliente: autoriza contra la campaña dueña del
// post y valida la transición con la máquina de estados antes de persistir.
func (uc *PostUseCase) Review(actor dto.Actor, id entity.ID, in dto.ReviewPostRequest) (*dto.PostResponse, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	campaign, err := uc.campaignRepo.GetByID(post.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.ErrCampaignNotFound
	}
	az := actorOf(actor)
	err = authz.CanPerform(az, authz.ActionReviewPost, authz.Target{Campaign: &authz.CampaignTarget{
		ManagerID: campaign.ManagerID,
		ClientID:  campaign.UserID,
	}})
	if err != nil {
		return nil, err
	}
	req := approval.ReviewRequest{Reason: in.RejectReason}
	if in.TopicStatus != nil {
		s := entity.TopicStatus(*in.TopicStatus)
		req.TopicStatus = &s
	}
	if in.OutlineStatus != nil {
		s := entity.OutlineStatus(*in.OutlineStatus)
		req.OutlineStatus = &s
	}
	updated, err := approval.Review(*post, req)
	if err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now()
	if err := uc.postRepo.Update(&updated); err != nil {
		return nil, err
	}
	resp := toPostResponse(&updated)
	return &resp, nil
}

// Delete elimina (hard delete) un post previa autorización.
func (uc *PostUseCase) Delete(actor dto.Actor, id entity.ID) error {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return domain.ErrPostNotFound
	}
	az := actorOf(actor)
	if err := authz.CanPerform(az, authz.ActionDeletePost, authz.Target{}); err != nil {
		return err
	}
	return uc.postRepo.Delete(id)
}
