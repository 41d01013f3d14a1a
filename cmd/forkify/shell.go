// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Browse recipes interactively",
	Long: `Shell starts an interactive session. Each command stands for one
interaction with the recipe browser; type "help" for the list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return newShell(a, cmd.InOrStdin(), cmd.OutOrStdout()).run()
		})
	},
}

const shellHelp = `Commands:
  search <query>     search recipes            (s)
  open <id>          show a recipe             (o)
  next, prev         change results page       (n, p)
  page <n>           jump to results page n
  servings <n>       scale the recipe; also + and -
  bookmark           toggle the recipe's bookmark (b)
  bookmarks          list bookmarks            (bm)
  upload <file>      upload a recipe from a YAML file
  export <file>      export bookmarks (.yaml .json .csv .xlsx)
  help               show this help            (?)
  quit               leave the shell           (q)
`

// shell turns typed commands into view interactions.
type shell struct {
	a   *app
	in  *bufio.Scanner
	out io.Writer
}

func newShell(a *app, in io.Reader, out io.Writer) *shell {
	return &shell{a: a, in: bufio.NewScanner(in), out: out}
}

func (s *shell) run() error {
	fmt.Fprintln(s.out, `forkify shell. Type "help" for commands.`)
	s.a.location.Load()

	for {
		fmt.Fprint(s.out, "forkify> ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		quit, err := s.exec(s.in.Text())
		if err != nil {
			fmt.Fprintln(s.out, "error:", err)
		}
		if quit {
			return nil
		}
	}
}

// exec runs one command line. Failures of browser actions are already
// shown by the views; only usage errors are returned.
func (s *shell) exec(line string) (quit bool, err error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	a := s.a

	switch strings.ToLower(name) {
	case "":
	case "search", "s":
		if arg == "" {
			return false, fmt.Errorf("usage: search <query>")
		}
		a.views.Search.Submit(arg)
	case "open", "o":
		if arg == "" {
			return false, fmt.Errorf("usage: open <id>")
		}
		a.views.Results.Select(arg)
	case "next", "n":
		if !a.views.Pagination.ClickNext() {
			return false, fmt.Errorf("no next page")
		}
	case "prev", "p":
		if !a.views.Pagination.ClickPrev() {
			return false, fmt.Errorf("no previous page")
		}
	case "page":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return false, fmt.Errorf("usage: page <n>")
		}
		a.views.Pagination.Click(n)
	case "servings":
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return false, fmt.Errorf("usage: servings <n>, n > 0")
		}
		a.views.Recipe.ClickServings(n)
	case "+":
		a.views.Recipe.ClickIncrease()
	case "-":
		a.views.Recipe.ClickDecrease()
	case "bookmark", "b":
		if a.store.State().Recipe() == nil {
			return false, fmt.Errorf("open a recipe first")
		}
		a.views.Recipe.ClickBookmark()
	case "bookmarks", "bm":
		a.views.Bookmarks.Render(bookmarkPreviews(a))
	case "upload":
		if arg == "" {
			return false, fmt.Errorf("usage: upload <file>")
		}
		form, err := readRecipeForm(arg)
		if err != nil {
			return false, err
		}
		if !a.views.AddRecipe.IsOpen() {
			a.views.AddRecipe.ToggleWindow()
		}
		a.views.AddRecipe.Render(form)
		a.views.AddRecipe.Submit(form)
	case "export":
		if arg == "" {
			return false, fmt.Errorf("usage: export <file>")
		}
		bookmarks := a.store.State().Bookmarks()
		if err := exportBookmarks(arg, "", bookmarks); err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "Exported %d bookmark(s) to %s\n", len(bookmarks), arg)
	case "help", "?":
		fmt.Fprint(s.out, shellHelp)
	case "quit", "exit", "q":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q, type \"help\"", name)
	}
	return false, nil
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
