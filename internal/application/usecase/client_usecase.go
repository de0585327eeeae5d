package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

// ClientUseCase administración de clientes, siempre acotada por club.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso de clientes.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// Create crea un cliente del club.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.ClubID == "" || in.Name == "" {
		return nil, domain.ErrMissingField
	}
	clientType := in.Type
	if clientType == "" {
		clientType = entity.ClientRegular
	}
	now := time.Now()
	client := &entity.Client{
		ID:         uuid.New().String(),
		ClubID:     in.ClubID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Type:       clientType,
		TotalSpent: decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// ListByClub clientes del club.
func (uc *ClientUseCase) ListByClub(clubID string) ([]*dto.ClientResponse, error) {
	if clubID == "" {
		return nil, domain.ErrMissingField
	}
	list, err := uc.clientRepo.ListByClub(clubID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update edita un cliente del club.
func (uc *ClientUseCase) Update(id, clubID string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id, clubID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Type != nil {
		client.Type = *in.Type
	}
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente del club.
func (uc *ClientUseCase) Delete(id, clubID string) error {
	client, err := uc.clientRepo.GetByID(id, clubID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Delete(id, clubID)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:           c.ID,
		ClubID:       c.ClubID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Type:         c.Type,
		TotalSpent:   c.TotalSpent,
		VisitCount:   c.VisitCount,
		LastPurchase: c.LastPurchase,
		CreatedAt:    c.CreatedAt,
	}
}
