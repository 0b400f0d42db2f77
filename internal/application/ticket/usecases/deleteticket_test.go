package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	apperrors "ticketdesk/internal/shared/errors"
)

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	t.Run("removes links then ticket", func(t *testing.T) {
		links := &mockLinkRepository{
			customerLinks: []ticket.CustomerLink{{TicketID: 2, CustomerID: 2}},
			agentLinks:    []ticket.AgentLink{{TicketID: 2, AgentID: 2}},
		}
		repo := &mockTicketRepository{
			DeleteFunc: func(ctx context.Context, id uint) (bool, error) {
				assert.Equal(t, []string{"delete_customer", "delete_agent"}, links.calls)
				return true, nil
			},
		}
		tx := &mockTxManager{}

		result, err := NewDeleteTicketUseCase(repo, links, tx, &mockLogger{}).
			Execute(context.Background(), DeleteTicketCommand{TicketID: 2})

		require.NoError(t, err)
		assert.True(t, result.Deleted)
		assert.Equal(t, uint(2), result.TicketID)
		assert.Equal(t, 1, tx.runs)
		assert.Empty(t, links.customerLinks)
		assert.Empty(t, links.agentLinks)
	})

	t.Run("unknown ticket is not an error", func(t *testing.T) {
		repo := &mockTicketRepository{
			DeleteFunc: func(ctx context.Context, id uint) (bool, error) { return false, nil },
		}

		result, err := NewDeleteTicketUseCase(repo, &mockLinkRepository{}, &mockTxManager{}, &mockLogger{}).
			Execute(context.Background(), DeleteTicketCommand{TicketID: 9999})

		require.NoError(t, err)
		assert.False(t, result.Deleted)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := NewDeleteTicketUseCase(&mockTicketRepository{}, &mockLinkRepository{}, &mockTxManager{}, &mockLogger{}).
			Execute(context.Background(), DeleteTicketCommand{})

		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("store failure", func(t *testing.T) {
		boom := errors.New("disk full")
		repo := &mockTicketRepository{
			DeleteFunc: func(ctx context.Context, id uint) (bool, error) { return false, boom },
		}

		_, err := NewDeleteTicketUseCase(repo, &mockLinkRepository{}, &mockTxManager{}, &mockLogger{}).
			Execute(context.Background(), DeleteTicketCommand{TicketID: 1})

		assert.ErrorIs(t, err, boom)
	})
}
