package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/brinevale/voyager-go/internal/application/voyage/commands"
	"github.com/brinevale/voyager-go/internal/application/voyage/queries"
	"github.com/brinevale/voyager-go/internal/domain/proficiency"
	"github.com/brinevale/voyager-go/internal/domain/shared"
	"github.com/brinevale/voyager-go/internal/domain/voyage"
)

// NewVoyageCommand creates the voyage command with subcommands
func NewVoyageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voyage",
		Short: "Start, advance and inspect voyages",
		Long: `Start new voyages and drive them day by day.

Auto-mode voyages run to completion as soon as they start. Manual-mode
voyages advance one day per 'voyage step' call and can be resumed at any
time; state is persisted between days.

Examples:
  voyager voyage start --ship coaster --route coastal-run --seed 42
  voyager voyage start --file voyage.yaml
  voyager voyage step --id 6f3a...
  voyager voyage run --id 6f3a...
  voyager voyage status --id 6f3a...
  voyager voyage abandon --id 6f3a...`,
	}

	cmd.AddCommand(newVoyageStartCommand())
	cmd.AddCommand(newVoyageStepCommand())
	cmd.AddCommand(newVoyageRunCommand())
	cmd.AddCommand(newVoyageStatusCommand())
	cmd.AddCommand(newVoyageAbandonCommand())

	return cmd
}

// newVoyageStartCommand creates the voyage start subcommand
func newVoyageStartCommand() *cobra.Command {
	var (
		file            string
		shipID          string
		routeID         string
		mode            string
		tradeMode       string
		commission      int
		gold            int
		seed            int64
		crewQuality     string
		autoRepair      bool
		enableRowing    bool
		automateTrading bool
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new voyage",
		Long: `Start a new voyage from flags or a YAML config file.

With --file the whole voyage configuration (including the captain and an
optional lieutenant) is read from YAML; any flags given on top override
the file. Without --file a stock captain is used.

Examples:
  voyager voyage start --ship coaster --route coastal-run --gold 5000
  voyager voyage start --file voyage.yaml --mode manual --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultVoyageConfig()
			if file != "" {
				raw, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read voyage file: %w", err)
				}
				if err := yaml.Unmarshal(raw, &cfg); err != nil {
					return fmt.Errorf("failed to parse voyage file: %w", err)
				}
			}

			if cmd.Flags().Changed("ship") {
				cfg.ShipID = shipID
			}
			if cmd.Flags().Changed("route") {
				cfg.RouteID = routeID
			}
			if cmd.Flags().Changed("mode") {
				cfg.Mode = voyage.Mode(mode)
			}
			if cmd.Flags().Changed("trade-mode") {
				cfg.TradeMode = voyage.TradeMode(tradeMode)
			}
			if cmd.Flags().Changed("commission") {
				cfg.CommissionRate = commission
			}
			if cmd.Flags().Changed("gold") {
				cfg.StartingGold = gold
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("crew-quality") {
				cfg.CrewQuality = shared.CrewQuality(crewQuality)
			}
			if cmd.Flags().Changed("auto-repair") {
				cfg.AutoRepair = autoRepair
			}
			if cmd.Flags().Changed("rowing") {
				cfg.EnableRowing = enableRowing
			}
			if cmd.Flags().Changed("automate-trading") {
				cfg.AutomateTrading = automateTrading
			}

			return runVoyageStart(cfg)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML voyage configuration file")
	cmd.Flags().StringVar(&shipID, "ship", "", "Ship template id (see 'registry ships')")
	cmd.Flags().StringVar(&routeID, "route", "", "Route id (see 'registry routes')")
	cmd.Flags().StringVar(&mode, "mode", "auto", "Voyage mode: auto or manual")
	cmd.Flags().StringVar(&tradeMode, "trade-mode", "speculation", "Trade mode: speculation or consignment")
	cmd.Flags().IntVar(&commission, "commission", 25, "Crew commission percent in consignment mode (10-40)")
	cmd.Flags().IntVar(&gold, "gold", 5000, "Starting gold")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Dice seed (0 seeds from the clock)")
	cmd.Flags().StringVar(&crewQuality, "crew-quality", "", "Crew quality (LANDLUBBER..OLD_SALTS)")
	cmd.Flags().BoolVar(&autoRepair, "auto-repair", true, "Repair automatically at ports")
	cmd.Flags().BoolVar(&enableRowing, "rowing", false, "Row when becalmed (needs oarsmen)")
	cmd.Flags().BoolVar(&automateTrading, "automate-trading", true, "Buy and sell cargo without prompting")

	return cmd
}

// newVoyageStepCommand creates the voyage step subcommand
func newVoyageStepCommand() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Advance a voyage one day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVoyageStep(id)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Voyage ID [required]")
	cmd.MarkFlagRequired("id")

	return cmd
}

// newVoyageRunCommand creates the voyage run subcommand
func newVoyageRunCommand() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a voyage to completion",
		Long: `Advance a voyage day by day until it reaches its final port or is
lost at sea. Throttled by simulation.days_per_second.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVoyageRun(id)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Voyage ID [required]")
	cmd.MarkFlagRequired("id")

	return cmd
}

// newVoyageStatusCommand creates the voyage status subcommand
func newVoyageStatusCommand() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show a voyage's position and finances",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVoyageStatus(id)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Voyage ID [required]")
	cmd.MarkFlagRequired("id")

	return cmd
}

// newVoyageAbandonCommand creates the voyage abandon subcommand
func newVoyageAbandonCommand() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "abandon",
		Short: "Abandon a voyage and delete its state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVoyageAbandon(id)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Voyage ID [required]")
	cmd.MarkFlagRequired("id")

	return cmd
}

// defaultVoyageConfig builds a config with a stock captain for flag-only
// starts.
func defaultVoyageConfig() voyage.Config {
	return voyage.Config{
		Mode:           voyage.ModeAuto,
		TradeMode:      voyage.TradeSpeculation,
		CommissionRate: 25,
		Captain: proficiency.Officer{
			Name: "Aron Velle",
			Abilities: proficiency.Abilities{
				Strength: 12, Dexterity: 12, Constitution: 11,
				Intelligence: 13, Wisdom: 14, Charisma: 13,
			},
			Skills: map[proficiency.Skill]bool{
				proficiency.SkillBargaining: true,
				proficiency.SkillAppraisal:  true,
				proficiency.SkillTrade:      true,
				proficiency.SkillPiloting:   true,
			},
			Level: 3,
		},
		StartingGold:    5000,
		AutoRepair:      true,
		AutomateTrading: true,
		StartDate:       shared.Date{Year: 1372, Month: 1, Day: 1},
		CrewQuality:     shared.CrewQualityAverage,
	}
}

// runVoyageStart executes the voyage start command
func runVoyageStart(cfg voyage.Config) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := context.Background()
	result, err := a.mediator.Send(ctx, &commands.StartVoyageCommand{Config: cfg})
	if err != nil {
		return err
	}
	response := result.(*commands.StartVoyageResponse)

	fmt.Printf("Voyage %s started: %s, treasury %s gp\n",
		response.VoyageID, response.Status, formatGold(response.Treasury))

	if cfg.Mode == voyage.ModeAuto {
		state, err := a.runner.RunToCompletion(ctx, response.VoyageID)
		if err != nil {
			return err
		}
		fmt.Printf("Voyage %s finished: %s\n", state.ID, state.Status)
	}
	return nil
}

// runVoyageStep executes the voyage step command
func runVoyageStep(id string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	result, err := a.mediator.Send(context.Background(), &commands.SimulateDayCommand{VoyageID: id})
	if err != nil {
		return err
	}
	response := result.(*commands.SimulateDayResponse)

	fmt.Printf("%s: %s, %d miles to next port, treasury %s gp\n",
		response.Date, response.Status, response.RemainingMiles, formatGold(response.Treasury))
	if response.Finished {
		fmt.Println("Voyage is over.")
	}
	return nil
}

// runVoyageRun executes the voyage run command
func runVoyageRun(id string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	state, err := a.runner.RunToCompletion(context.Background(), id)
	if err != nil {
		return err
	}
	fmt.Printf("Voyage %s finished: %s\n", state.ID, state.Status)
	return nil
}

// runVoyageStatus executes the voyage status command
func runVoyageStatus(id string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	result, err := a.mediator.Send(context.Background(), &queries.GetStatusQuery{VoyageID: id})
	if err != nil {
		return err
	}
	s := result.(*queries.StatusResponse)

	fmt.Printf("\nVOYAGE %s\n", s.VoyageID)
	fmt.Println("─────────────────────────────────────────────")
	fmt.Printf("Status:     %s on %s\n", s.Status, s.Date)
	fmt.Printf("Ship:       %s, hull %d/%d, %d crew\n", s.Ship, s.Hull, s.HullMax, s.Crew)
	fmt.Printf("Position:   leg %d, %d miles to go, last port %s\n",
		s.LegIndex, s.RemainingMiles, s.LastPortID)
	fmt.Printf("Treasury:   %s gp\n", formatGold(s.Treasury))
	if s.CargoLoads > 0 {
		fmt.Printf("Cargo:      %d loads of %s goods\n", s.CargoLoads, s.CargoClass)
	} else {
		fmt.Println("Cargo:      empty hold")
	}
	fmt.Printf("Events:     %d recorded\n\n", s.EventCount)
	return nil
}

// runVoyageAbandon executes the voyage abandon command
func runVoyageAbandon(id string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	result, err := a.mediator.Send(context.Background(), &commands.AbandonVoyageCommand{VoyageID: id})
	if err != nil {
		return err
	}
	response := result.(*commands.AbandonVoyageResponse)

	fmt.Printf("Voyage %s abandoned\n", response.VoyageID)
	return nil
}
