package usecases

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vforit/ticktrack/internal/domain/ticket"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
)

func TestCreateAttachmentUseCase_Execute(t *testing.T) {
	t.Run("record starts as a placeholder", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return testTicket(t, ticketID), nil
			},
		}
		attachmentRepo := &mockAttachmentRepository{
			SaveFunc: func(ctx context.Context, a *ticket.Attachment) error {
				return a.SetID(3)
			},
		}

		uc := NewCreateAttachmentUseCase(ticketRepo, attachmentRepo, newNopLogger())
		result, err := uc.Execute(context.Background(), CreateAttachmentCommand{
			TicketID: 5,
			Filename: "report.pdf",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(3), result.ID)
		assert.Equal(t, "report.pdf", result.Filename)
		assert.False(t, result.Uploaded)
		assert.Equal(t, ticket.PlaceholderFilepath, result.Filepath)
	})

	t.Run("attaching to a missing ticket", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return nil, apperrors.NewNotFoundError("ticket not found")
			},
		}

		uc := NewCreateAttachmentUseCase(ticketRepo, &mockAttachmentRepository{}, newNopLogger())
		_, err := uc.Execute(context.Background(), CreateAttachmentCommand{TicketID: 99, Filename: "report.pdf"})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestUploadAttachmentUseCase_Execute(t *testing.T) {
	t.Run("stores the file and records the server path", func(t *testing.T) {
		var updated *ticket.Attachment
		attachmentRepo := &mockAttachmentRepository{
			GetByTicketAndIDFunc: func(ctx context.Context, ticketID, attachmentID uint) (*ticket.Attachment, error) {
				return testAttachment(t, attachmentID, ticketID, "report.pdf", ticket.PlaceholderFilepath), nil
			},
			UpdateFunc: func(ctx context.Context, a *ticket.Attachment) error {
				updated = a
				return nil
			},
		}
		storage := &mockFileStorage{
			WriteFunc: func(ticketID uint, filename string, content io.Reader) (string, error) {
				data, err := io.ReadAll(content)
				require.NoError(t, err)
				assert.Equal(t, "file bytes", string(data))
				return "uploads/5/report.pdf", nil
			},
		}

		uc := NewUploadAttachmentUseCase(attachmentRepo, storage, newNopLogger())
		result, err := uc.Execute(context.Background(), UploadAttachmentCommand{
			TicketID:     5,
			AttachmentID: 3,
			Filename:     "report.pdf",
			Content:      strings.NewReader("file bytes"),
		})

		require.NoError(t, err)
		assert.True(t, result.Uploaded)
		assert.Equal(t, "uploads/5/report.pdf", result.Filepath)
		require.NotNil(t, updated)
		assert.True(t, updated.IsUploaded())
	})

	t.Run("empty filename", func(t *testing.T) {
		uc := NewUploadAttachmentUseCase(&mockAttachmentRepository{}, &mockFileStorage{}, newNopLogger())
		_, err := uc.Execute(context.Background(), UploadAttachmentCommand{TicketID: 5, AttachmentID: 3})

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	})

	t.Run("unknown attachment", func(t *testing.T) {
		attachmentRepo := &mockAttachmentRepository{
			GetByTicketAndIDFunc: func(ctx context.Context, ticketID, attachmentID uint) (*ticket.Attachment, error) {
				return nil, apperrors.NewNotFoundError("attachment not found")
			},
		}

		uc := NewUploadAttachmentUseCase(attachmentRepo, &mockFileStorage{}, newNopLogger())
		_, err := uc.Execute(context.Background(), UploadAttachmentCommand{
			TicketID:     5,
			AttachmentID: 99,
			Filename:     "report.pdf",
			Content:      strings.NewReader("x"),
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestDownloadAttachmentUseCase_Execute(t *testing.T) {
	t.Run("resolves the stored file", func(t *testing.T) {
		attachmentRepo := &mockAttachmentRepository{
			GetByTicketAndIDFunc: func(ctx context.Context, ticketID, attachmentID uint) (*ticket.Attachment, error) {
				return testAttachment(t, attachmentID, ticketID, "report.pdf", "uploads/5/report.pdf"), nil
			},
		}

		uc := NewDownloadAttachmentUseCase(attachmentRepo, &mockFileStorage{}, newNopLogger())
		result, err := uc.Execute(context.Background(), 5, 3)

		require.NoError(t, err)
		assert.Equal(t, "report.pdf", result.Filename)
		assert.Equal(t, "uploads/5/report.pdf", result.Path)
	})

	t.Run("not uploaded yet", func(t *testing.T) {
		attachmentRepo := &mockAttachmentRepository{
			GetByTicketAndIDFunc: func(ctx context.Context, ticketID, attachmentID uint) (*ticket.Attachment, error) {
				return testAttachment(t, attachmentID, ticketID, "report.pdf", ticket.PlaceholderFilepath), nil
			},
		}

		uc := NewDownloadAttachmentUseCase(attachmentRepo, &mockFileStorage{}, newNopLogger())
		_, err := uc.Execute(context.Background(), 5, 3)

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("file missing on disk", func(t *testing.T) {
		attachmentRepo := &mockAttachmentRepository{
			GetByTicketAndIDFunc: func(ctx context.Context, ticketID, attachmentID uint) (*ticket.Attachment, error) {
				return testAttachment(t, attachmentID, ticketID, "report.pdf", "uploads/5/report.pdf"), nil
			},
		}
		storage := &mockFileStorage{
			ExistsFunc: func(path string) bool { return false },
		}

		uc := NewDownloadAttachmentUseCase(attachmentRepo, storage, newNopLogger())
		_, err := uc.Execute(context.Background(), 5, 3)

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestDeleteAttachmentUseCase_Execute(t *testing.T) {
	t.Run("removes file then record", func(t *testing.T) {
		var order []string
		attachmentRepo := &mockAttachmentRepository{
			GetByTicketAndIDFunc: func(ctx context.Context, ticketID, attachmentID uint) (*ticket.Attachment, error) {
				return testAttachment(t, attachmentID, ticketID, "report.pdf", "uploads/5/report.pdf"), nil
			},
			DeleteFunc: func(ctx context.Context, attachmentID uint) error {
				order = append(order, "record")
				return nil
			},
		}
		storage := &mockFileStorage{
			RemoveFunc: func(path string) error {
				order = append(order, "file")
				return nil
			},
		}

		uc := NewDeleteAttachmentUseCase(attachmentRepo, storage, newNopLogger())
		require.NoError(t, uc.Execute(context.Background(), 5, 3))
		assert.Equal(t, []string{"file", "record"}, order)
	})

	t.Run("placeholder record skips file removal", func(t *testing.T) {
		removeCalled := false
		attachmentRepo := &mockAttachmentRepository{
			GetByTicketAndIDFunc: func(ctx context.Context, ticketID, attachmentID uint) (*ticket.Attachment, error) {
				return testAttachment(t, attachmentID, ticketID, "report.pdf", ticket.PlaceholderFilepath), nil
			},
		}
		storage := &mockFileStorage{
			RemoveFunc: func(path string) error {
				removeCalled = true
				return nil
			},
		}

		uc := NewDeleteAttachmentUseCase(attachmentRepo, storage, newNopLogger())
		require.NoError(t, uc.Execute(context.Background(), 5, 3))
		assert.False(t, removeCalled)
	})
}
