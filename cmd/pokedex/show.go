package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-tui/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex-tui/internal/tui"
)

func newShowCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show one pokemon as it was in the selected generation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.service.GetPokemon(ctx, &pokedex.GetPokemonInput{IDOrName: args[0]})
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), out.Pokemon)
			}

			var art string
			if a.sprites != nil {
				url := out.Pokemon.ArtworkURL
				if url == "" {
					url = out.Pokemon.SpriteURL
				}
				if url != "" {
					art, err = a.sprites.Render(ctx, url, a.cfg.Sprites.Width)
					if err != nil {
						slog.DebugContext(ctx, "skipping sprite", "error", err)
						art = ""
					}
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderInfo(out.Pokemon, art))
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print the resolved pokemon as JSON")
	return cmd
}

func newMovesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moves <id|name>",
		Short: "List the moves a pokemon could learn in the selected generation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.service.GetMoves(ctx, &pokedex.GetMovesInput{IDOrName: args[0]})
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMoves(out))
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print the moves as JSON")
	return cmd
}

func newEvolutionCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evolution <id|name>",
		Short: "Show the evolution chain of a pokemon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.service.GetEvolutionChain(ctx, &pokedex.GetEvolutionChainInput{IDOrName: args[0]})
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), tui.RenderEvolution(out))
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print the chain as JSON")
	return cmd
}

func newSearchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy search pokemon by name or dex number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.service.SearchPokemon(ctx, &pokedex.SearchPokemonInput{
				Query: args[0],
				Limit: opts.searchLimit,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Results) == 0 {
				_, err = fmt.Fprintln(w, "No matches.")
				return err
			}
			for _, r := range out.Results {
				if _, err := fmt.Fprintf(w, "#%03d %s\n", r.Ref.ID, r.Ref.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.searchLimit, "limit", 10, "maximum results, 0 for all")
	return cmd
}

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "Print the version group to generation table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderVersionTable())
			return err
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
