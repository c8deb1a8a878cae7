//go:build ignore

// Helper script to seed a database with sample workspaces and tasks
// Run with: go run add_test_data.go [db path]

package main

import (
	"context"
	"log"
	"os"

	"github.com/thenoetrevino/todo/internal/app"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
	workspaceservice "github.com/thenoetrevino/todo/internal/services/workspace"
)

func main() {
	path := "todo-sample.db"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	ctx := context.Background()
	a, err := app.Open(ctx, path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer a.Close()

	sample := map[string][]string{
		"Home":  {"Buy milk", "Fix the sink", "Call the landlord"},
		"Work":  {"Review PR #42", "Write release notes", "Update deps"},
		"Books": {"Finish Dune"},
	}

	for name, titles := range sample {
		ws, err := a.WorkspaceService.CreateWorkspace(ctx, workspaceservice.CreateWorkspaceRequest{Name: name})
		if err != nil {
			log.Printf("Error creating workspace '%s': %v", name, err)
			continue
		}
		log.Printf("Created workspace: %s (#%d)", ws.Name, ws.ID)

		for i, title := range titles {
			task, err := a.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
				Title:       title,
				WorkspaceID: ws.ID,
			})
			if err != nil {
				log.Printf("Error creating task '%s': %v", title, err)
				continue
			}
			log.Printf("Created task: %s", task.Title)

			if i == 0 {
				if _, err := a.TaskService.SetCompleted(ctx, task.ID, true); err != nil {
					log.Printf("Error completing task '%s': %v", title, err)
				}
				if _, err := a.TaskService.CreateSubtask(ctx, taskservice.CreateSubtaskRequest{
					Title:    "Check the receipt",
					ParentID: task.ID,
				}); err != nil {
					log.Printf("Error creating subtask: %v", err)
				}
			}
		}
	}

	log.Println("Sample data added successfully!")
}
