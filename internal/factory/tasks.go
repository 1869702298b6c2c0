package factory

import (
	"fmt"
	"time"

	"worksim/internal/dist"
	"worksim/internal/domain"
	"worksim/internal/projectname"
)

// Tasks builds the top-level tasks for one project. Per task the draws run in
// a fixed order: section, name, assignee, creator, creation time, due date,
// completion decision, completion time, description, modification time,
// likes. Changing that order changes every seeded dataset.
//
// Section choice is weighted 1/(position+1): earlier workflow stages hold
// more open work. Completion is doubly stochastic: the project draws a
// threshold from its type's rate range per task, and a fresh uniform draw is
// compared against it.
func (f *Factory) Tasks(project domain.Project, sections []domain.Section, memberIDs []string) ([]domain.Task, error) {
	if len(sections) == 0 || len(memberIDs) == 0 {
		return nil, nil
	}
	sectionWeights := make([]float64, len(sections))
	for i, s := range sections {
		sectionWeights[i] = 1.0 / float64(s.Position+1)
	}
	rateMin, rateMax := f.cfg.CompletionRate(project.ProjectType)
	archetype := projectname.Parse(project.WorkflowType)

	var assigneeWeights map[string]float64
	if f.cfg.Workload.ParetoAssignment {
		w, err := dist.ParetoWeights(f.rng, memberIDs, f.cfg.Workload.TopFraction, f.cfg.Workload.TopMass)
		if err != nil {
			return nil, err
		}
		assigneeWeights = w
	}

	count := dist.UniformInt(f.rng, f.cfg.Tasks.PerProject.Min, f.cfg.Tasks.PerProject.Max)
	tasks := make([]domain.Task, 0, count)
	for i := 0; i < count; i++ {
		section, err := dist.WeightedPick(f.rng, sections, sectionWeights)
		if err != nil {
			return nil, err
		}
		name := f.names.TaskName(archetype)

		var assignee *string
		if f.rng.Float64() >= f.cfg.Tasks.UnassignedRate {
			id := f.pickAssignee(memberIDs, assigneeWeights)
			assignee = &id
		}
		creator := memberIDs[f.rng.Intn(len(memberIDs))]

		created, err := f.clock.CreatedAt(project.CreatedAt, f.cfg.EndDate())
		if err != nil {
			return nil, err
		}
		due, err := f.dueDate(project, created)
		if err != nil {
			return nil, err
		}

		status := domain.StatusIncomplete
		var completedAt *time.Time
		var completedBy *string
		p := f.rng.Float64()
		threshold := dist.UniformFloat(f.rng, rateMin, rateMax)
		if p < threshold {
			status = domain.StatusComplete
			done := f.clock.CompletionTime(created, due)
			completedAt = &done
			if assignee != nil {
				completedBy = assignee
			} else {
				completedBy = &creator
			}
		}

		description := f.names.TaskDescription(name)
		modified := f.modifiedAt(created, completedAt)

		likes := 0
		if f.rng.Float64() < f.cfg.Tasks.LikeRate {
			likes = dist.UniformInt(f.rng, 0, 5)
		}

		tasks = append(tasks, domain.Task{
			TaskID:      domain.NewID(),
			ProjectID:   project.ProjectID,
			SectionID:   section.SectionID,
			Name:        name,
			Description: description,
			AssigneeID:  assignee,
			CreatedBy:   creator,
			Status:      status,
			DueDate:     due,
			CreatedAt:   created,
			ModifiedAt:  modified,
			CompletedAt: completedAt,
			CompletedBy: completedBy,
			NumLikes:    likes,
		})
	}
	return tasks, nil
}

func (f *Factory) pickAssignee(memberIDs []string, weights map[string]float64) string {
	if weights == nil {
		return memberIDs[f.rng.Intn(len(memberIDs))]
	}
	ws := make([]float64, len(memberIDs))
	for i, id := range memberIDs {
		ws[i] = weights[id]
	}
	id, err := dist.WeightedPick(f.rng, memberIDs, ws)
	if err != nil {
		return memberIDs[f.rng.Intn(len(memberIDs))]
	}
	return id
}

func (f *Factory) dueDate(project domain.Project, created time.Time) (*time.Time, error) {
	if f.cfg.Time.SprintAlignedDueDates && project.ProjectType == "Sprint" {
		d := f.clock.SprintAlignedDueDate(created)
		return &d, nil
	}
	return f.clock.DueDate(created)
}

// modifiedAt keeps the created <= modified invariant even when completion
// clustering pulled the completion instant slightly before creation.
func (f *Factory) modifiedAt(created time.Time, completedAt *time.Time) time.Time {
	m := f.clock.ModifiedAt(created, completedAt)
	if m.Before(created) {
		return created
	}
	return m
}

// Subtasks expands a fraction of top-level tasks into one to five subtasks.
// Subtasks inherit project, section and assignee from the parent, are created
// 1-48 hours after it, and go one level deep only. A subtask of a completed
// parent completes with probability 0.8; its completion instant is derived
// fresh so the aggregate invariants hold for subtasks too.
func (f *Factory) Subtasks(tasks []domain.Task) []domain.Task {
	var subtasks []domain.Task
	for i := range tasks {
		parent := &tasks[i]
		if f.rng.Float64() >= f.cfg.Subtasks.Rate {
			continue
		}
		n := dist.UniformInt(f.rng, f.cfg.Subtasks.PerTask.Min, f.cfg.Subtasks.PerTask.Max)
		for j := 0; j < n; j++ {
			status := domain.StatusIncomplete
			if parent.Status == domain.StatusComplete && f.rng.Float64() < 0.8 {
				status = domain.StatusComplete
			}
			created := parent.CreatedAt.Add(time.Duration(dist.UniformInt(f.rng, 1, 48)) * time.Hour)

			var completedAt *time.Time
			var completedBy *string
			if status == domain.StatusComplete {
				done := f.clock.CompletionTime(created, parent.DueDate)
				if done.Before(created) {
					done = created
				}
				completedAt = &done
				if parent.AssigneeID != nil {
					completedBy = parent.AssigneeID
				} else {
					creator := parent.CreatedBy
					completedBy = &creator
				}
			}

			name := parent.Name
			if len(name) > 30 {
				name = name[:30] + "..."
			}
			subtasks = append(subtasks, domain.Task{
				TaskID:       domain.NewID(),
				ProjectID:    parent.ProjectID,
				SectionID:    parent.SectionID,
				ParentTaskID: &parent.TaskID,
				Name:         fmt.Sprintf("Subtask %d: %s", j+1, name),
				AssigneeID:   parent.AssigneeID,
				CreatedBy:    parent.CreatedBy,
				Status:       status,
				CreatedAt:    created,
				ModifiedAt:   f.modifiedAt(created, completedAt),
				CompletedAt:  completedAt,
				CompletedBy:  completedBy,
			})
		}
	}
	return subtasks
}

// BackfillSubtaskCounts is a pure aggregation pass: it counts children per
// parent and returns the tasks with num_subtasks set. Runs before persistence
// so each task row is written exactly once.
func BackfillSubtaskCounts(tasks []domain.Task) []domain.Task {
	counts := make(map[string]int)
	for _, t := range tasks {
		if t.ParentTaskID != nil {
			counts[*t.ParentTaskID]++
		}
	}
	for i := range tasks {
		tasks[i].NumSubtasks = counts[tasks[i].TaskID]
	}
	return tasks
}

var commentTexts = []string{
	"Working on this now",
	"Updated the implementation",
	"Ready for review",
	"Looks good to me",
	"Need more info on this",
	"Blocked by another task",
	"Can we prioritize this?",
}

// Comments attaches one to eight comments to a fraction of tasks. Authors
// rotate between the task's assignee and creator; comments land 1-168 hours
// after task creation.
func (f *Factory) Comments(tasks []domain.Task) []domain.Comment {
	var comments []domain.Comment
	for _, t := range tasks {
		if f.rng.Float64() >= f.cfg.Comments.Rate {
			continue
		}
		authors := []string{t.CreatedBy}
		if t.AssigneeID != nil && *t.AssigneeID != t.CreatedBy {
			authors = append(authors, *t.AssigneeID)
		}
		n := dist.UniformInt(f.rng, f.cfg.Comments.PerTask.Min, f.cfg.Comments.PerTask.Max)
		for j := 0; j < n; j++ {
			likes := 0
			if f.rng.Float64() < 0.3 {
				likes = dist.UniformInt(f.rng, 0, 3)
			}
			comments = append(comments, domain.Comment{
				CommentID:   domain.NewID(),
				TaskID:      t.TaskID,
				UserID:      authors[f.rng.Intn(len(authors))],
				CommentType: "comment",
				Text:        commentTexts[f.rng.Intn(len(commentTexts))],
				CreatedAt:   t.CreatedAt.Add(time.Duration(dist.UniformInt(f.rng, 1, 168)) * time.Hour),
				NumLikes:    likes,
			})
		}
	}
	return comments
}

// BackfillCommentCounts mirrors BackfillSubtaskCounts for comment counts.
func BackfillCommentCounts(tasks []domain.Task, comments []domain.Comment) []domain.Task {
	counts := make(map[string]int)
	for _, c := range comments {
		counts[c.TaskID]++
	}
	for i := range tasks {
		tasks[i].NumComments = counts[tasks[i].TaskID]
	}
	return tasks
}
