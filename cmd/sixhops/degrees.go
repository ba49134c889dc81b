package sixhops

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	sixhopslib "github.com/sixhops/sixhops"
	"github.com/sixhops/sixhops/pkg/config"
	"github.com/sixhops/sixhops/pkg/dataset"
	"github.com/sixhops/sixhops/pkg/graph"
)

var degreesCmd = &cobra.Command{
	Use:   "degrees SOURCE TARGET",
	Short: "Find the degrees of separation between two actors",
	Long: `Find the shortest chain of shared movies connecting two actors.

SOURCE and TARGET are actor names as they appear in people.csv. When a name
matches several people the candidates are listed; interactively you are
prompted for the intended id, otherwise the command fails so scripts never
get a silently guessed person.`,
	Args: cobra.ExactArgs(2),
	RunE: runDegrees,
}

func init() {
	rootCmd.AddCommand(degreesCmd)

	degreesCmd.Flags().String("data", "data/small", "dataset directory with people.csv, movies.csv, stars.csv")
	degreesCmd.Flags().String("output", "text", "output format (text, json, yaml)")
	degreesCmd.Flags().Int("max-degrees", 0, "bail out beyond this many hops (0 = unbounded)")

	viper.BindPFlag("dataset.dir", degreesCmd.Flags().Lookup("data"))
	viper.BindPFlag("search.output", degreesCmd.Flags().Lookup("output"))
	viper.BindPFlag("search.max_degrees", degreesCmd.Flags().Lookup("max-degrees"))
}

func runDegrees(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := newLogger(cfg)

	store, err := dataset.NewLoader(log).Load(cfg.Dataset.Dir)
	if err != nil {
		return err
	}

	client, err := sixhopslib.NewClient(store, &sixhopslib.Config{MaxDegrees: cfg.Search.MaxDegrees}, log)
	if err != nil {
		return err
	}

	source, err := resolvePerson(client, args[0])
	if err != nil {
		return err
	}
	target, err := resolvePerson(client, args[1])
	if err != nil {
		return err
	}

	chain, err := client.ShortestChain(cmd.Context(), source.ID, target.ID)
	if errors.Is(err, sixhopslib.ErrNoConnection) {
		fmt.Println("Not connected.")
		return nil
	}
	if err != nil {
		return err
	}

	return printChain(client, cfg.Search.Output, source, target, chain)
}

// resolvePerson maps a name onto a single person. Ambiguous names are
// resolved interactively when stdin is a terminal and fail otherwise.
func resolvePerson(client *sixhopslib.Client, name string) (*graph.Entity, error) {
	candidates, err := client.ResolveName(name)
	if err != nil {
		return nil, fmt.Errorf("person %q: %w", name, err)
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		var ids []string
		for _, e := range candidates {
			ids = append(ids, fmt.Sprintf("%s (%s, born %s)", e.ID, e.Name, e.Birth))
		}
		return nil, fmt.Errorf("name %q is ambiguous; use one of: %s", name, strings.Join(ids, ", "))
	}

	fmt.Printf("Which %q?\n", name)
	for _, e := range candidates {
		fmt.Printf("ID: %s, Name: %s, Birth: %s\n", e.ID, e.Name, e.Birth)
	}
	fmt.Print("Intended person ID: ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read choice: %w", err)
	}
	choice := strings.TrimSpace(line)
	for _, e := range candidates {
		if e.ID == choice {
			return e, nil
		}
	}
	return nil, fmt.Errorf("person %q: id %q is not a candidate", name, choice)
}

// chainResult is the serializable form of a found chain.
type chainResult struct {
	Source  string      `json:"source" yaml:"source"`
	Target  string      `json:"target" yaml:"target"`
	Degrees int         `json:"degrees" yaml:"degrees"`
	Hops    []hopResult `json:"hops" yaml:"hops"`
}

type hopResult struct {
	MovieID  string `json:"movie_id" yaml:"movie_id"`
	Movie    string `json:"movie" yaml:"movie"`
	PersonID string `json:"person_id" yaml:"person_id"`
	Person   string `json:"person" yaml:"person"`
}

func printChain(client *sixhopslib.Client, format string, source, target *graph.Entity, chain sixhopslib.Chain) error {
	switch format {
	case "text", "":
		fmt.Printf("%d degrees of separation.\n", chain.Degrees())
		lines, err := client.Describe(source.ID, chain)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Println(line)
		}
		return nil

	case "json", "yaml":
		result := chainResult{
			Source:  source.Name,
			Target:  target.Name,
			Degrees: chain.Degrees(),
			Hops:    make([]hopResult, 0, chain.Degrees()),
		}
		for _, hop := range chain.Hops {
			movie, err := client.Store().Grouping(hop.GroupingID)
			if err != nil {
				return err
			}
			person, err := client.Store().Entity(hop.EntityID)
			if err != nil {
				return err
			}
			result.Hops = append(result.Hops, hopResult{
				MovieID:  movie.ID,
				Movie:    movie.Label,
				PersonID: person.ID,
				Person:   person.Name,
			})
		}
		if format == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		}
		out, err := yaml.Marshal(result)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
