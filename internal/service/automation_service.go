// FILE: internal/service/automation_service.go
package service

import (
	"context"

	"micro-automation-hub/internal/dto"
	"micro-automation-hub/internal/repository/specification"
	"micro-automation-hub/internal/repository/unitofwork"
)

type IAutomationService interface {
	List(ctx context.Context) ([]*dto.AutomationResponse, error)
}

type automationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAutomationService(uowFactory unitofwork.RepositoryFactory) IAutomationService {
	return &automationService{uowFactory: uowFactory}
}

func (s *automationService) List(ctx context.Context) ([]*dto.AutomationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	automations, err := uow.AutomationRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AutomationResponse, 0, len(automations))
	for _, a := range automations {
		res = append(res, &dto.AutomationResponse{
			Id:              a.Id,
			Name:            a.Name,
			Summary:         a.Summary,
			Owner:           a.Owner,
			Status:          a.Status,
			LastRunRelative: a.LastRunRelative,
			RunRate:         a.RunRate,
		})
	}
	return res, nil
}
