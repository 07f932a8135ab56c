// edit-post loads a post from the API, applies the given changes and submits
// it, printing the outcome the way the dashboard toasts it.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/debemdeboas/devlog/internal/apiclient"
	"github.com/debemdeboas/devlog/internal/config"
	"github.com/debemdeboas/devlog/internal/editor"
	"github.com/debemdeboas/devlog/internal/notify"
	"github.com/debemdeboas/devlog/internal/repository"
)

var headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)

type options struct {
	Slug            string
	Title           string
	ShortAns        string
	DescriptionFile string
	Category        string
	Token           string
	// CookieName carries Token. Empty means the first of api.forward_cookies.
	CookieName string
}

// navigator reports where the dashboard would have sent the author.
type navigator struct {
	out io.Writer
}

func (n navigator) Navigate(path string) {
	fmt.Fprintf(n.out, "→ %s\n", path)
}

func main() {
	godotenv.Load()

	configPath := config.DefaultConfigPath
	if p := os.Getenv(config.EnvConfigPath); p != "" {
		configPath = p
	}
	if err := config.LoadConfig(configPath); err != nil {
		fmt.Fprintf(os.Stderr, config.ErrLoadConfigFmt+"\n", err)
		os.Exit(1)
	}

	var opts options
	api := flag.String("api", "", "Posts API base URL (defaults to $API_URL or the config default)")
	flag.StringVar(&opts.Slug, "slug", "", "Slug of the post to edit")
	flag.StringVar(&opts.Title, "title", "", "New title")
	flag.StringVar(&opts.ShortAns, "short-ans", "", "New short answer")
	flag.StringVar(&opts.DescriptionFile, "description-file", "", "Markdown file with the new description")
	flag.StringVar(&opts.Category, "category", "", "New category (Programming, Technology, Lifestyle, News)")
	flag.StringVar(&opts.Token, "token", os.Getenv("DEVLOG_TOKEN"), "Credential sent with the update")
	flag.StringVar(&opts.CookieName, "cookie", "", "Cookie carrying -token (defaults to the first of api.forward_cookies)")
	flag.Parse()

	if opts.Slug == "" {
		fmt.Fprintln(os.Stderr, "--slug is required")
		flag.Usage()
		os.Exit(2)
	}

	baseURL := config.AppConfig.API.BaseURL
	if *api != "" {
		baseURL = *api
	}

	client := apiclient.New(baseURL)
	os.Exit(run(context.Background(), client, opts, os.Stdout))
}

func run(ctx context.Context, client *apiclient.Client, opts options, out io.Writer) int {
	failed := false
	notifier := notify.Multi(
		notify.Terminal{Out: out},
		notify.Func(func(kind notify.Kind, _ string) {
			if kind == notify.Error {
				failed = true
			}
		}),
	)

	ctrl := editor.NewController(
		repository.NewAPIPostRepository(client),
		notifier,
		navigator{out: out},
		zerolog.Nop(),
	)

	fmt.Fprintln(out, headingStyle.Render("Editing "+opts.Slug))
	if err := ctrl.Load(ctx, opts.Slug); err != nil {
		return 1
	}

	if opts.Title != "" {
		ctrl.SetTitle(opts.Title)
	}
	if opts.ShortAns != "" {
		ctrl.SetShortAns(opts.ShortAns)
	}
	if opts.DescriptionFile != "" {
		description, err := os.ReadFile(opts.DescriptionFile)
		if err != nil {
			notifier.Notify(notify.Error, err.Error())
			return 1
		}
		ctrl.SetDescription(string(description))
	}
	if opts.Category != "" {
		if err := ctrl.SetCategory(opts.Category); err != nil {
			notifier.Notify(notify.Error, config.MsgUnknownCategory)
			return 1
		}
	}

	if cookie := credential(opts); cookie != nil {
		ctx = apiclient.WithCookies(ctx, []*http.Cookie{cookie})
	}
	if err := ctrl.Submit(ctx); err != nil || failed {
		return 1
	}
	return 0
}

// credential builds the cookie the server would have forwarded to the API.
func credential(opts options) *http.Cookie {
	if opts.Token == "" {
		return nil
	}
	name := opts.CookieName
	if name == "" {
		names := config.AppConfig.API.ForwardCookies
		if len(names) == 0 {
			return nil
		}
		name = names[0]
	}
	return &http.Cookie{Name: name, Value: opts.Token}
}
