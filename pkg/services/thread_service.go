package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/message"
	"github.com/forgeworks/forge/ent/thread"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/google/uuid"
)

// ThreadService manages conversation threads and their messages. Callers
// resolve project ownership first (ProjectService.Get); thread lookups are
// then scoped to that project.
type ThreadService struct {
	client *ent.Client
}

// NewThreadService creates a new ThreadService
func NewThreadService(client *ent.Client) *ThreadService {
	return &ThreadService{client: client}
}

// Create opens a thread in a project. An empty title auto-names the
// thread "Conversation N" by position.
func (s *ThreadService) Create(httpCtx context.Context, projectID, title string) (*ent.Thread, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if title == "" {
		count, err := s.client.Thread.Query().
			Where(thread.ProjectIDEQ(projectID)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count threads: %w", err)
		}
		title = fmt.Sprintf("Conversation %d", count+1)
	}

	th, err := s.client.Thread.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetTitle(title).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}

	return th, nil
}

// ListForProject returns a project's threads, newest first.
func (s *ThreadService) ListForProject(ctx context.Context, projectID string) ([]*ent.Thread, error) {
	threads, err := s.client.Thread.Query().
		Where(thread.ProjectIDEQ(projectID)).
		Order(ent.Desc(thread.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	return threads, nil
}

// GetInProject retrieves a thread, requiring it to belong to the project.
func (s *ThreadService) GetInProject(ctx context.Context, projectID, threadID string) (*ent.Thread, error) {
	if threadID == "" {
		return nil, NewValidationError("thread_id", "required")
	}

	th, err := s.client.Thread.Query().
		Where(
			thread.IDEQ(threadID),
			thread.ProjectIDEQ(projectID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	return th, nil
}

// GetDetail retrieves a thread with its messages loaded oldest-first.
func (s *ThreadService) GetDetail(ctx context.Context, projectID, threadID string) (*models.ThreadDetail, error) {
	th, err := s.GetInProject(ctx, projectID, threadID)
	if err != nil {
		return nil, err
	}

	messages, err := s.ListMessages(ctx, th.ID)
	if err != nil {
		return nil, err
	}

	return &models.ThreadDetail{Thread: th, Messages: messages}, nil
}

// AddMessage appends a chat turn to a thread.
func (s *ThreadService) AddMessage(httpCtx context.Context, params models.CreateMessageParams) (*ent.Message, error) {
	if params.ThreadID == "" {
		return nil, NewValidationError("thread_id", "required")
	}
	if params.Content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	msg, err := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetThreadID(params.ThreadID).
		SetRole(params.Role).
		SetContent(params.Content).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to add message: %w", err)
	}

	return msg, nil
}

// ListMessages returns a thread's messages oldest-first, the order the
// spec agent replays them as conversation history.
func (s *ThreadService) ListMessages(ctx context.Context, threadID string) ([]*ent.Message, error) {
	messages, err := s.client.Message.Query().
		Where(message.ThreadIDEQ(threadID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// Rename retitles a thread. Used to auto-name a thread after its first
// successful generation.
func (s *ThreadService) Rename(ctx context.Context, threadID, title string) error {
	if title == "" {
		return NewValidationError("title", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Thread.UpdateOneID(threadID).
		SetTitle(title).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to rename thread: %w", err)
	}
	return nil
}
