package service

import (
	"context"
	"fmt"

	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/notify"
	"go.uber.org/zap"
)

type TeamService interface {
	Get(ctx context.Context, projectID int64) (*TeamOutput, error)
	// Invite adds the user to the project team and notifies them.
	Invite(ctx context.Context, projectID, userID int64, vacancyID *int64, role *string) (*model.ProjectTeamMember, error)
	RemoveMember(ctx context.Context, projectID, userID int64) (bool, error)
}

// TeamOutput is a team with its members.
type TeamOutput struct {
	Team    *model.ProjectTeam        `json:"team"`
	Members []model.ProjectTeamMember `json:"members"`
}

type teamService struct {
	r        repo.TeamRepo
	projects repo.ProjectRepo
	n        repo.NotificationRepo
	hub      *notify.Hub
	log      *zap.Logger
}

func NewTeamService(r repo.TeamRepo, projects repo.ProjectRepo, n repo.NotificationRepo, hub *notify.Hub, log *zap.Logger) TeamService {
	return &teamService{r: r, projects: projects, n: n, hub: hub, log: log}
}

func (s *teamService) Get(ctx context.Context, projectID int64) (*TeamOutput, error) {
	team, err := s.r.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	members, err := s.r.ListMembers(ctx, team.TeamID)
	if err != nil {
		return nil, err
	}
	return &TeamOutput{Team: team, Members: members}, nil
}

func (s *teamService) Invite(ctx context.Context, projectID, userID int64, vacancyID *int64, role *string) (*model.ProjectTeamMember, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	team, err := s.r.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	member := &model.ProjectTeamMember{
		TeamID:    team.TeamID,
		UserID:    userID,
		VacancyID: vacancyID,
		Role:      role,
	}
	if err := s.r.AddMember(ctx, member); err != nil {
		return nil, err
	}

	text := fmt.Sprintf("You were invited to the team of project %q", project.ProjectName)
	if err := s.n.Create(ctx, &model.Notification{
		ProjectID:        &projectID,
		UserID:           userID,
		NotificationType: "ProjectInvite",
		NotificationText: text,
	}); err != nil {
		s.log.Sugar().Errorw("invite notification failed", "projectId", projectID, "err", err)
	}
	s.hub.Push(userID, notify.Event{Type: "ProjectInvite", Payload: member})

	return member, nil
}

func (s *teamService) RemoveMember(ctx context.Context, projectID, userID int64) (bool, error) {
	team, err := s.r.GetByProjectID(ctx, projectID)
	if err != nil {
		return false, err
	}
	return s.r.RemoveMember(ctx, team.TeamID, userID)
}
