package usecase

import (
	"context"

	"github.com/ethiocodes/nexora/internal/entity"
	"go.uber.org/zap"
)

type TestimonialUseCase struct {
	Testimonials TestimonialCollection
	Logger       *zap.Logger
}

func NewTestimonialUseCase(testimonials TestimonialCollection, logger *zap.Logger) *TestimonialUseCase {
	return &TestimonialUseCase{Testimonials: testimonials, Logger: orNop(logger)}
}

func byTestimonialID(id string) func(entity.Testimonial) bool {
	return func(t entity.Testimonial) bool { return t.ID == id }
}

func (uc *TestimonialUseCase) List(ctx context.Context) []entity.Testimonial {
	return uc.Testimonials.Snapshot(ctx)
}

func (uc *TestimonialUseCase) Create(ctx context.Context, input TestimonialInput) (*entity.Testimonial, error) {
	if errs := ValidateTestimonialInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}
	t := entity.NewTestimonial(input.Quote, input.Author, input.Role, input.Avatar)
	err := uc.Testimonials.Apply(ctx, func(current []entity.Testimonial) ([]entity.Testimonial, error) {
		return Append(current, *t), nil
	})
	if err != nil {
		return nil, storeFailure(uc.Logger, "create_testimonial", t.ID, err)
	}
	return t, nil
}

// Update casa pelo ID; trocar o autor não muda a identidade do depoimento.
func (uc *TestimonialUseCase) Update(ctx context.Context, id string, input TestimonialInput) (entity.Testimonial, error) {
	if errs := ValidateTestimonialInput(input); len(errs) > 0 {
		return entity.Testimonial{}, validationFailed(errs)
	}
	updated := entity.Testimonial{ID: id, Quote: input.Quote, Author: input.Author, Role: input.Role, Avatar: input.Avatar}
	err := uc.Testimonials.Apply(ctx, func(current []entity.Testimonial) ([]entity.Testimonial, error) {
		i := IndexOf(current, byTestimonialID(id))
		if i < 0 {
			return nil, entity.ErrTestimonialNotFound
		}
		return ReplaceAt(current, i, updated), nil
	})
	if err != nil {
		return entity.Testimonial{}, storeFailure(uc.Logger, "update_testimonial", id, err, entity.ErrTestimonialNotFound)
	}
	return updated, nil
}

func (uc *TestimonialUseCase) Delete(ctx context.Context, id string) error {
	err := uc.Testimonials.Apply(ctx, func(current []entity.Testimonial) ([]entity.Testimonial, error) {
		i := IndexOf(current, byTestimonialID(id))
		if i < 0 {
			return nil, entity.ErrTestimonialNotFound
		}
		return RemoveAt(current, i), nil
	})
	if err != nil {
		return storeFailure(uc.Logger, "delete_testimonial", id, err, entity.ErrTestimonialNotFound)
	}
	return nil
}
