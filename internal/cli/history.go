package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent solves",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := storage.NewHistoryRepository(db).ListRecent(historyLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-36s  %-20s  %6s  %8s", "ID", "WHEN", "MOVES", "TIME")))
	for _, rec := range records {
		fmt.Printf("%-36s  %-20s  %6d  %8s\n",
			rec.SolveID,
			rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Length,
			(time.Duration(rec.DurationMs) * time.Millisecond).String(),
		)
	}
	return nil
}
