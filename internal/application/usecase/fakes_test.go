package usecase_test

import (
	"sort"

	"github.com/tu-usuario/agency-pro/internal/domain"
	"github.com/tu-usuario/agency-pro/internal/domain/authz"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
	"github.com/tu-usuario/agency-pro/internal/domain/repository"
)

// Repositorios en memoria para los tests de los casos de uso. Guardan copias
// para que los tests no muten el "almacén" por accidente a través de punteros.

type memUserRepo struct {
	users map[entity.ID]entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[entity.ID]entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(id entity.ID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	out := u
	return &out, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) ListScoped(scope authz.Scope) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		if scope.All || u.CreatorID.Equal(scope.CreatorID) || u.ID.Equal(scope.SelfID) {
			out := u
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *memUserRepo) Delete(id entity.ID) error {
	delete(r.users, id)
	return nil
}

type memCampaignRepo struct {
	campaigns map[entity.ID]entity.Campaign
	users     *memUserRepo
}

func newMemCampaignRepo(users *memUserRepo) *memCampaignRepo {
	return &memCampaignRepo{campaigns: make(map[entity.ID]entity.Campaign), users: users}
}

func (r *memCampaignRepo) Create(c *entity.Campaign) error {
	r.campaigns[c.ID] = *c
	return nil
}

func (r *memCampaignRepo) GetByID(id entity.ID) (*entity.Campaign, error) {
	c, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	out := c
	return &out, nil
}

func (r *memCampaignRepo) ListScoped(scope authz.Scope) ([]*repository.CampaignSummary, error) {
	var list []*repository.CampaignSummary
	for _, c := range r.campaigns {
		switch {
		case scope.All:
		case !scope.ManagerID.IsZero() && c.ManagerID.Equal(scope.ManagerID):
		case !scope.ClientID.IsZero() && c.UserID.Equal(scope.ClientID):
		default:
			continue
		}
		s := repository.CampaignSummary{Campaign: c}
		if m, ok := r.users.users[c.ManagerID]; ok {
			s.ManagerName, s.ManagerEmail = m.Name, m.Email
		}
		if u, ok := r.users.users[c.UserID]; ok {
			s.ClientName, s.ClientEmail = u.Name, u.Email
		}
		list = append(list, &s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Campaign.ID < list[j].Campaign.ID })
	return list, nil
}

type memPostRepo struct {
	posts map[entity.ID]entity.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[entity.ID]entity.Post)}
}

func (r *memPostRepo) Create(p *entity.Post) error {
	r.posts[p.ID] = *p
	return nil
}

func (r *memPostRepo) GetByID(id entity.ID) (*entity.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	out := p
	return &out, nil
}

func (r *memPostRepo) Update(p *entity.Post) error {
	r.posts[p.ID] = *p
	return nil
}

func (r *memPostRepo) ListByCampaign(campaignID entity.ID) ([]*entity.Post, error) {
	var list []*entity.Post
	for _, p := range r.posts {
		if p.CampaignID.Equal(campaignID) {
			out := p
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *memPostRepo) Delete(id entity.ID) error {
	delete(r.posts, id)
	return nil
}
