package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/basket/internal/clipboard"
	"github.com/idilsaglam/basket/internal/recipe"
	"github.com/idilsaglam/basket/internal/ui"
)

func (r *runner) runRecipe(a []string) int {
	if len(a) == 0 {
		ui.Fail("usage: basket recipe <generate|sub|open>")
		return 2
	}
	switch a[0] {
	case "generate", "gen":
		return r.doGenerate(a[1:])
	case "sub", "substitute":
		if len(a) < 2 {
			ui.Fail("usage: basket recipe sub <ingredient>")
			return 2
		}
		return r.doSubstitute(strings.Join(a[1:], " "))
	case "open":
		return r.doOpen(a[1:])
	}
	ui.Fail("usage: basket recipe <generate|sub|open>")
	return 2
}

func (r *runner) client() *recipe.Client {
	sc := r.opt.Config.Service
	return recipe.NewClient(sc.BaseURL, r.opt.Auth.Token(), sc.Timeout, r.opt.Log)
}

// recipeActions are the follow-ups shared by generate and open.
type recipeActions struct {
	add, save, share bool
}

func (ra *recipeActions) register(fs *flag.FlagSet, withShare bool) {
	fs.BoolVar(&ra.add, "add", false, "add the ingredients to the shopping list")
	fs.BoolVar(&ra.save, "save", false, "save the recipe as a text file in export.dir")
	if withShare {
		fs.BoolVar(&ra.share, "share", false, "print a share link and copy it to the clipboard")
	}
}

func (r *runner) doGenerate(a []string) int {
	fs := flag.NewFlagSet("recipe generate", flag.ContinueOnError)
	fs.SetOutput(ui.Stderr())
	ingredients := fs.String("ingredients", "", "ingredients separated by commas or newlines")
	description := fs.String("description", "", "what you feel like eating")
	diet := fs.String("diet", "", "dietary filter, e.g. vegan")
	cuisine := fs.String("cuisine", "", "cuisine filter, e.g. italian")
	var acts recipeActions
	acts.register(fs, true)
	if err := fs.Parse(a); err != nil {
		return 2
	}

	req := recipe.GenerateRequest{
		Ingredients: recipe.ParseIngredients(*ingredients),
		Description: strings.TrimSpace(*description),
		Filters:     recipe.Filters{Diet: *diet, Cuisine: *cuisine},
	}
	if len(req.Ingredients) == 0 && req.Description == "" {
		ui.Fail("recipe generate: give -ingredients or -description")
		return 2
	}

	ctx, cancel := context.WithTimeout(r.ctx, r.opt.Config.Service.Timeout)
	defer cancel()
	fmt.Fprintln(ui.Stdout(), ui.Current().Muted.Render("Generating recipe..."))
	rec, err := r.client().Generate(ctx, req)
	if err != nil {
		return reportServiceError("Failed to generate recipe", err)
	}
	return r.afterRecipe(rec, acts)
}

func (r *runner) doOpen(a []string) int {
	fs := flag.NewFlagSet("recipe open", flag.ContinueOnError)
	fs.SetOutput(ui.Stderr())
	var acts recipeActions
	acts.register(fs, false)
	if err := fs.Parse(a); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		ui.Fail("usage: basket recipe open [-add] [-save] <share link>")
		return 2
	}
	rec, err := recipe.DecodeShared(fs.Arg(0))
	if err != nil {
		r.log.Warn("bad share link", zap.Error(err))
		ui.Fail("Could not open shared recipe: " + err.Error())
		return 1
	}
	return r.afterRecipe(rec, acts)
}

func (r *runner) afterRecipe(rec *recipe.Recipe, acts recipeActions) int {
	printRecipe(rec)
	code := 0
	if acts.share {
		if c := r.printShare(rec); c != 0 {
			code = c
		}
	}
	if acts.save {
		p, err := recipe.SaveFile(r.opt.Config.Export.Dir, rec)
		if err != nil {
			ui.Fail("Could not save recipe: " + err.Error())
			code = 1
		} else {
			ui.OK("saved " + p)
		}
	}
	if acts.add {
		if len(rec.Ingredients) == 0 {
			ui.Info("No ingredients to add.")
		} else {
			mgr, closeFn, err := r.openList()
			if err != nil {
				ui.Fail(err.Error())
				return 1
			}
			defer closeFn()
			if c := r.addAll(mgr, rec.IngredientNames()); c != 0 {
				code = c
			}
		}
	}
	return code
}

func (r *runner) printShare(rec *recipe.Recipe) int {
	link, err := recipe.ShareURL(r.opt.Config.Share.BaseURL, rec)
	if err != nil {
		ui.Fail("Could not create share link: " + err.Error())
		return 1
	}
	tg := recipe.Targets(link, rec.Title)
	t := ui.Current()
	ui.Panel([]string{
		t.Title.Render("Share"),
		tg.Text,
		"",
		t.Accent.Render("Link") + "      " + tg.URL,
		t.Accent.Render("Email") + "     " + tg.Email,
		t.Accent.Render("Facebook") + "  " + tg.Facebook,
		t.Accent.Render("Twitter") + "   " + tg.Twitter,
		t.Accent.Render("WhatsApp") + "  " + tg.WhatsApp,
	})
	method, err := clipboard.Copy(r.opt.Log, tg.URL, r.opt.Clipboard...)
	if err != nil {
		r.log.Info("clipboard unavailable", zap.Error(err))
		ui.Info("Copy the link above manually.")
		return 0
	}
	ui.OK("share link copied to clipboard (" + method + ")")
	return 0
}

func printRecipe(rec *recipe.Recipe) {
	t := ui.Current()
	lines := []string{t.Title.Render(rec.Title)}
	if rec.Description != "" {
		lines = append(lines, t.Muted.Render(rec.Description))
	}
	if rec.PrepTime != "" || rec.CookTime != "" {
		var times []string
		if rec.PrepTime != "" {
			times = append(times, "Prep: "+rec.PrepTime)
		}
		if rec.CookTime != "" {
			times = append(times, "Cook: "+rec.CookTime)
		}
		lines = append(lines, t.Accent.Render(strings.Join(times, "  ·  ")))
	}
	lines = append(lines, "", t.Category.Render("Ingredients"))
	if len(rec.Ingredients) == 0 {
		lines = append(lines, t.Muted.Render("  none listed"))
	}
	for _, ing := range rec.Ingredients {
		lines = append(lines, "  • "+string(ing))
	}
	lines = append(lines, "", t.Category.Render("Steps"))
	if len(rec.Steps) == 0 {
		lines = append(lines, t.Muted.Render("  none listed"))
	}
	for i, step := range rec.Steps {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, step))
	}
	ui.Panel(lines)
}

func (r *runner) doSubstitute(ingredient string) int {
	ctx, cancel := context.WithTimeout(r.ctx, r.opt.Config.Service.Timeout)
	defer cancel()
	subs, err := r.client().Substitute(ctx, ingredient)
	if errors.Is(err, recipe.ErrBlankIngredient) {
		ui.Fail("usage: basket recipe sub <ingredient>")
		return 2
	}
	if err != nil {
		return reportServiceError("Failed to get substitutions", err)
	}
	ingredient = strings.TrimSpace(ingredient)
	if len(subs) == 0 {
		ui.Info("No substitutions found for " + ingredient + ".")
		return 0
	}
	lines := []string{ui.Current().Title.Render("Substitutes for " + ingredient)}
	for _, s := range subs {
		lines = append(lines, "  • "+s)
	}
	ui.Panel(lines)
	return 0
}

// reportServiceError words the failure for the user: incomplete payloads get
// a fixed message, service errors their own text.
func reportServiceError(what string, err error) int {
	var serr *recipe.ServiceError
	switch {
	case errors.Is(err, recipe.ErrInvalidRecipe):
		ui.Warn("Recipe data is incomplete or invalid.")
	case errors.As(err, &serr):
		ui.Fail(what + ": " + serr.Message)
	case errors.Is(err, context.DeadlineExceeded):
		ui.Fail(what + ": the service did not answer in time")
	default:
		ui.Fail(what + ": " + err.Error())
	}
	return 1
}
