package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/agency-pro/internal/application/dto"
	"github.com/tu-usuario/agency-pro/internal/domain"
	"github.com/tu-usuario/agency-pro/internal/domain/authz"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
	"github.com/tu-usuario/agency-pro/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase casos de uso de gestión de usuarios, con autorización por actor.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista los usuarios visibles para el actor. El alcance (todos, o solo
// el propio actor más los usuarios que creó) lo decide la política en un solo lugar.
func (uc *UserUseCase) List(actor dto.Actor) ([]dto.UserResponse, error) {
	az := actorOf(actor)
	if err := authz.CanPerform(az, authz.ActionListUsers, authz.Target{}); err != nil {
		return nil, err
	}
	scope, err := authz.ScopeFilter(az, authz.KindUsers)
	if err != nil {
		return nil, err
	}
	users, err := uc.repo.ListScoped(scope)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *entityToUserResponse(u))
	}
	return out, nil
}

// Create crea un usuario: autoriza (staff solo puede crear clientes), verifica
// unicidad de email, hashea el password con bcrypt y persiste.
func (uc *UserUseCase) Create(actor dto.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	az := actorOf(actor)
	if err := authz.CanPerform(az, authz.ActionCreateUser, authz.Target{User: &authz.UserTarget{Role: role}}); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	creator := in.CreatorID
	if creator.IsZero() {
		creator = actor.ID
	}
	now := time.Now()
	user := &entity.User{
		ID:           entity.NewID(uuid.New().String()),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Company:      in.Company,
		Contact:      in.Contact,
		CreatorID:    creator,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.IncentiveRate != nil {
		user.IncentiveRate = *in.IncentiveRate
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Update aplica una actualización parcial sobre el usuario objetivo, previa
// autorización contra la proyección del objetivo (rol, creador). El cambio de
// rol pasa por esta misma vía privilegiada.
func (uc *UserUseCase) Update(actor dto.Actor, id entity.ID, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	target, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	az := actorOf(actor)
	err = authz.CanPerform(az, authz.ActionUpdateUser, authz.Target{User: &authz.UserTarget{
		ID:        target.ID,
		CreatorID: target.CreatorID,
		Role:      target.Role,
	}})
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		target.Name = *in.Name
	}
	if in.Email != nil {
		target.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		target.PasswordHash = string(hash)
	}
	if in.Role != nil {
		role := entity.Role(*in.Role)
		if !entity.ValidRole(role) {
			return nil, domain.ErrInvalidInput
		}
		target.Role = role
	}
	if in.Company != nil {
		target.Company = *in.Company
	}
	if in.Contact != nil {
		target.Contact = *in.Contact
	}
	if in.IncentiveRate != nil {
		target.IncentiveRate = *in.IncentiveRate
	}
	target.UpdatedAt = time.Now()
	if err := uc.repo.Update(target); err != nil {
		return nil, err
	}
	return entityToUserResponse(target), nil
}

// Delete elimina (hard delete) el usuario objetivo previa autorización.
func (uc *UserUseCase) Delete(actor dto.Actor, id entity.ID) error {
	target, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	az := actorOf(actor)
	err = authz.CanPerform(az, authz.ActionDeleteUser, authz.Target{User: &authz.UserTarget{
		ID:        target.ID,
		CreatorID: target.CreatorID,
		Role:      target.Role,
	}})
	if err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	resp := &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Company:   u.Company,
		Contact:   u.Contact,
		CreatorID: u.CreatorID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Role == entity.RoleStaff {
		rate := u.IncentiveRate
		resp.IncentiveRate = &rate
	}
	return resp
}
