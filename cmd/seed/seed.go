package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	authRepo "nurse-manager/internal/auth/repository"
	calendarRepo "nurse-manager/internal/calendar/repository"
	copilotRepo "nurse-manager/internal/copilot/repository"
	followupRepo "nurse-manager/internal/followup/repository"
	"nurse-manager/internal/model"
	"nurse-manager/internal/roster"
	"nurse-manager/pkg/encrypter"
	"nurse-manager/pkg/log"
)

const (
	demoPassword    = "password123"
	seedNurseCount  = 5
	sampleQuestion  = "What should I follow up on today?"
	sampleAnswer    = "Based on your current tasks, you should focus on the equipment request for Room 202."
	sampleConvTitle = "Sample Conversation"
)

type userStore interface {
	CountUsers(ctx context.Context) (int64, error)
	CreateUser(ctx context.Context, opt authRepo.CreateUserOptions) (model.User, error)
}

type conversationStore interface {
	CreateConversation(ctx context.Context, opt copilotRepo.CreateConversationOptions) (model.Conversation, error)
	CreateMessage(ctx context.Context, opt copilotRepo.CreateMessageOptions) (model.Message, error)
	CreatePromptLog(ctx context.Context, opt copilotRepo.CreatePromptLogOptions) (model.PromptLog, error)
}

type taskStore interface {
	CreateTask(ctx context.Context, opt followupRepo.CreateTaskOptions) (model.Task, error)
	UpdateTask(ctx context.Context, opt followupRepo.UpdateTaskOptions) (model.Task, error)
}

type eventStore interface {
	CreateEvent(ctx context.Context, opt calendarRepo.CreateEventOptions) (model.CalendarEvent, error)
}

type seeder struct {
	l             log.Logger
	users         userStore
	conversations conversationStore
	tasks         taskStore
	events        eventStore
	enc           encrypter.Encrypter
	roster        *roster.Provider
	now           func() time.Time
}

// run seeds an empty database. It reports false when users already exist.
func (s seeder) run(ctx context.Context) (bool, error) {
	if s.now == nil {
		s.now = time.Now
	}

	count, err := s.users.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	admin, nurses, err := s.seedUsers(ctx)
	if err != nil {
		return false, err
	}
	s.l.Infof(ctx, "Created %d users", len(nurses)+1)

	if err := s.seedConversation(ctx, admin.ID); err != nil {
		return false, err
	}

	n, err := s.seedTasks(ctx, admin, nurses)
	if err != nil {
		return false, err
	}
	s.l.Infof(ctx, "Created %d follow-up tasks", n)

	if err := s.seedEvents(ctx, admin.ID); err != nil {
		return false, err
	}
	s.l.Info(ctx, "Created calendar events")

	return true, nil
}

func (s seeder) seedUsers(ctx context.Context) (model.User, []model.User, error) {
	hash, err := s.enc.HashPassword(demoPassword)
	if err != nil {
		return model.User{}, nil, fmt.Errorf("hash password: %w", err)
	}

	admin, err := s.users.CreateUser(ctx, authRepo.CreateUserOptions{
		Username:     "admin",
		PasswordHash: hash,
		FullName:     "System Admin",
		Role:         model.RoleAdmin,
	})
	if err != nil {
		return model.User{}, nil, err
	}

	staff := s.roster.Nurses()
	if len(staff) > seedNurseCount {
		staff = staff[:seedNurseCount]
	}

	nurses := make([]model.User, 0, len(staff))
	for _, n := range staff {
		u, err := s.users.CreateUser(ctx, authRepo.CreateUserOptions{
			Username:     usernameFor(n.Name),
			PasswordHash: hash,
			FullName:     n.Name,
			Role:         model.RoleNurse,
			Unit:         n.Unit,
			Shift:        string(n.Shift),
		})
		if err != nil {
			return model.User{}, nil, err
		}
		nurses = append(nurses, u)
	}
	return admin, nurses, nil
}

func (s seeder) seedConversation(ctx context.Context, userID int64) error {
	conv, err := s.conversations.CreateConversation(ctx, copilotRepo.CreateConversationOptions{
		UserID: userID,
		Title:  sampleConvTitle,
	})
	if err != nil {
		return err
	}

	for _, m := range []copilotRepo.CreateMessageOptions{
		{ConversationID: conv.ID, Role: model.MessageRoleUser, Content: sampleQuestion},
		{ConversationID: conv.ID, Role: model.MessageRoleAssistant, Content: sampleAnswer},
	} {
		if _, err := s.conversations.CreateMessage(ctx, m); err != nil {
			return err
		}
	}

	_, err = s.conversations.CreatePromptLog(ctx, copilotRepo.CreatePromptLogOptions{
		UserID:   userID,
		Prompt:   sampleQuestion,
		Response: sampleAnswer,
	})
	return err
}

// seedTasks assigns the sample tasks to the seeded nurses in order, the rest to admin.
func (s seeder) seedTasks(ctx context.Context, admin model.User, nurses []model.User) (int, error) {
	samples := s.roster.SampleTasks()
	for i, t := range samples {
		assignee := admin.ID
		if i < len(nurses) {
			assignee = nurses[i].ID
		}

		created, err := s.tasks.CreateTask(ctx, followupRepo.CreateTaskOptions{
			Description: t.Description,
			Priority:    t.Priority,
			AssigneeID:  &assignee,
		})
		if err != nil {
			return i, err
		}

		if t.Status != "" && t.Status != created.Status {
			if _, err := s.tasks.UpdateTask(ctx, followupRepo.UpdateTaskOptions{
				ID:         created.ID,
				Priority:   created.Priority,
				Status:     t.Status,
				AssigneeID: created.AssigneeID,
			}); err != nil {
				return i, err
			}
		}
	}
	return len(samples), nil
}

func (s seeder) seedEvents(ctx context.Context, userID int64) error {
	now := s.now()
	for _, ev := range []calendarRepo.CreateEventOptions{
		{
			UserID:      userID,
			Title:       "Weekly Staff Meeting",
			Description: "Review staffing levels and upcoming schedules",
			EventDate:   now.Add(24 * time.Hour),
			Reminder:    true,
			Priority:    model.PriorityMedium,
			RelatedTo:   "Staff",
		},
		{
			UserID:      userID,
			Title:       "Check in with Sarah Chen",
			Description: "Follow up on burnout risk concerns",
			EventDate:   now.Add(48 * time.Hour),
			Reminder:    true,
			Priority:    model.PriorityHigh,
			RelatedTo:   "Sarah Chen",
		},
	} {
		if _, err := s.events.CreateEvent(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// usernameFor turns "Sarah Chen" into "sarah.chen".
func usernameFor(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), ".")
}
