package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Transaction executa operações em sequência e, se uma falhar, desfaz as
// anteriores na ordem inversa usando as compensações registradas.
type Transaction struct {
	operations []Operation
	logger     *zap.Logger
}

type Operation struct {
	Name       string
	Fn         func(context.Context) error
	Compensate *Compensation
}

type Compensation struct {
	Name string
	Fn   func(context.Context) error
}

func NewTransaction(logger *zap.Logger) *Transaction {
	return &Transaction{
		operations: []Operation{},
		logger:     orNop(logger),
	}
}

func (t *Transaction) AddOperation(name string, fn func(context.Context) error) {
	t.operations = append(t.operations, Operation{Name: name, Fn: fn})
}

// AddCompensation vale para a última operação adicionada.
func (t *Transaction) AddCompensation(name string, fn func(context.Context) error) {
	if len(t.operations) == 0 {
		return
	}
	t.operations[len(t.operations)-1].Compensate = &Compensation{Name: name, Fn: fn}
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, op := range t.operations {
		if err := op.Fn(ctx); err != nil {
			t.rollback(ctx, i)
			return fmt.Errorf("operation '%s' failed: %w (rolled back %d operations)", op.Name, err, i)
		}
	}
	return nil
}

// rollback ignora o cancelamento de ctx: uma compensação interrompida deixaria
// a operação salva pela metade.
func (t *Transaction) rollback(ctx context.Context, failedAtIndex int) {
	ctx = context.WithoutCancel(ctx)
	for i := failedAtIndex - 1; i >= 0; i-- {
		comp := t.operations[i].Compensate
		if comp == nil {
			continue
		}
		if err := comp.Fn(ctx); err != nil {
			t.logger.Error("compensation failed, collections may be inconsistent",
				zap.String("compensation", comp.Name), zap.Error(err))
		}
	}
}
