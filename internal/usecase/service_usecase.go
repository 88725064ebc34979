package usecase

import (
	"context"
	"strings"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

const defaultServiceIcon = "code"

type ServiceUseCase struct {
	Services ServiceCollection
	Logger   *zap.Logger
}

func NewServiceUseCase(services ServiceCollection, logger *zap.Logger) *ServiceUseCase {
	return &ServiceUseCase{Services: services, Logger: orNop(logger)}
}

func byServiceID(id string) func(entity.Service) bool {
	return func(s entity.Service) bool { return s.ID == id }
}

func (uc *ServiceUseCase) List(ctx context.Context, q ServiceQuery) []entity.Service {
	return FilterServices(uc.Services.Snapshot(ctx), q)
}

func (uc *ServiceUseCase) Categories(ctx context.Context) []string {
	return ServiceCategories(uc.Services.Snapshot(ctx))
}

func (uc *ServiceUseCase) Get(ctx context.Context, id string) (entity.Service, error) {
	s, ok := Find(uc.Services.Snapshot(ctx), byServiceID(id))
	if !ok {
		return entity.Service{}, storeFailure(uc.Logger, "get_service", id, entity.ErrServiceNotFound, entity.ErrServiceNotFound)
	}
	return s, nil
}

// Save com ID existente substitui o serviço no lugar. Sem ID, o ID é derivado
// do título (com sufixo -2, -3... se já existir) e o serviço entra no topo.
func (uc *ServiceUseCase) Save(ctx context.Context, input SaveServiceInput) (entity.Service, error) {
	if errs := ValidateSaveServiceInput(input); len(errs) > 0 {
		return entity.Service{}, validationFailed(errs)
	}

	var svc entity.Service
	if err := copier.Copy(&svc, &input); err != nil {
		return entity.Service{}, &TechnicalError{Code: CodeStoreError, Message: "copy service input: " + err.Error(), Err: err}
	}
	svc.Title = strings.TrimSpace(svc.Title)
	if svc.Icon == "" {
		svc.Icon = defaultServiceIcon
	}

	op := "update_service"
	err := uc.Services.Apply(ctx, func(current []entity.Service) ([]entity.Service, error) {
		if input.ID != "" {
			i := IndexOf(current, byServiceID(input.ID))
			if i < 0 {
				return nil, entity.ErrServiceNotFound
			}
			return ReplaceAt(current, i, svc), nil
		}
		op = "create_service"
		svc.ID = UniqueKey(entity.Slugify(svc.Title), func(k string) bool {
			return IndexOf(current, byServiceID(k)) >= 0
		})
		return Prepend(current, svc), nil
	})
	if err != nil {
		return entity.Service{}, storeFailure(uc.Logger, op, input.ID, err, entity.ErrServiceNotFound)
	}

	uc.Logger.Info("service saved", zap.String("op", op), zap.String("service_id", svc.ID))
	return svc, nil
}

func (uc *ServiceUseCase) Delete(ctx context.Context, id string) error {
	err := uc.Services.Apply(ctx, func(current []entity.Service) ([]entity.Service, error) {
		i := IndexOf(current, byServiceID(id))
		if i < 0 {
			return nil, entity.ErrServiceNotFound
		}
		return RemoveAt(current, i), nil
	})
	if err != nil {
		return storeFailure(uc.Logger, "delete_service", id, err, entity.ErrServiceNotFound)
	}
	uc.Logger.Info("service deleted", zap.String("service_id", id))
	return nil
}
