package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moretide/harvest"
)

var projectsClient int64

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE:  runProjects,
}

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List clients",
	Args:  cobra.NoArgs,
	RunE:  runClients,
}

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runTasks,
}

func init() {
	projectsCmd.Flags().Int64Var(&projectsClient, "client", 0, "Only projects of this client id")
}

func runProjects(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	var opts *harvest.ProjectListOptions
	if projectsClient != 0 {
		opts = &harvest.ProjectListOptions{ClientID: projectsClient}
	}
	projects, err := api.GetProjects(cmd.Context(), opts)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return nil
	}

	for _, p := range projects {
		line := fmt.Sprintf("%8d  %s", p.ID, p.Name)
		if code := strOr(p.Code, ""); code != "" {
			line += " [" + code + "]"
		}
		if p.Active != nil && !*p.Active {
			line += " (archived)"
		}
		fmt.Println(line)
	}
	return nil
}

func runClients(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	clients, err := api.GetClients(cmd.Context(), nil)
	if err != nil {
		return err
	}
	if len(clients) == 0 {
		fmt.Println("No clients found.")
		return nil
	}

	for _, c := range clients {
		line := fmt.Sprintf("%8d  %s", c.ID, c.Name)
		if c.Active != nil && !*c.Active {
			line += " (archived)"
		}
		fmt.Println(line)
	}
	return nil
}

func runTasks(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	tasks, err := api.GetTasks(cmd.Context(), nil)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	for _, task := range tasks {
		line := fmt.Sprintf("%8d  %s", task.ID, task.Name)
		if task.BillableByDefault != nil && *task.BillableByDefault {
			line += " (billable)"
		}
		if task.Deactivated != nil && *task.Deactivated {
			line += " (deactivated)"
		}
		fmt.Println(line)
	}
	return nil
}
