package bounded

import (
	"context"

	"github.com/innoave/bounded-number/pkg/journal"
)

// WithJournal attaches journal hooks to the Adjustable configuration.
// Hooks are cloned and nil entries dropped to preserve immutability.
func WithJournal(hooks journal.Hooks) Option {
	normalized := cloneJournalHooks(hooks)
	return func(cfg *config) {
		cfg.journal = normalized
	}
}

// JournalHooks returns a cloned slice of the journal hooks configured on the
// adjustable. The returned slice can be safely mutated by the caller.
func (a *Adjustable[N]) JournalHooks() journal.Hooks {
	if a == nil {
		return nil
	}
	return cloneJournalHooks(a.cfg.journal)
}

func (a *Adjustable[N]) emitJournal(op, expr string, from, to Value[N], clamped bool) {
	if !a.cfg.journal.Enabled() {
		return
	}
	_ = a.cfg.journal.Notify(context.Background(), journal.Event{
		Op:       op,
		Expr:     expr,
		From:     float64(from.Value()),
		To:       float64(to.Value()),
		Lower:    float64(to.Min()),
		Upper:    float64(to.Max()),
		Clamped:  clamped,
		Metadata: cloneMetadata(a.cfg.metadata),
	})
}

func cloneJournalHooks(hooks journal.Hooks) journal.Hooks {
	if len(hooks) == 0 {
		return nil
	}
	normalized := make([]journal.Hook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		normalized = append(normalized, hook)
	}
	if len(normalized) == 0 {
		return nil
	}
	return journal.Hooks(normalized)
}
