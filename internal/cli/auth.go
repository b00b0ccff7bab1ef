package cli

import (
	"fmt"
	"time"

	"github.com/idilsaglam/basket/internal/auth"
	"github.com/idilsaglam/basket/internal/ui"
)

func (r *runner) runAuth(a []string) int {
	if len(a) == 0 {
		ui.Fail("usage: basket auth <login|logout|status|whoami>")
		return 2
	}
	switch a[0] {
	case "login":
		return r.doAuthLogin()
	case "logout":
		return r.doAuthLogout()
	case "status":
		return r.doAuthStatus()
	case "whoami":
		return r.doAuthWhoAmI()
	}
	ui.Fail("usage: basket auth <login|logout|status|whoami>")
	return 2
}

func (r *runner) doAuthLogin() int {
	token, err := r.readLine("Paste your token: ")
	if err != nil {
		ui.Fail("read token: " + err.Error())
		return 1
	}
	if err := r.opt.Auth.Set(token, nil); err != nil {
		ui.Fail("save token: " + err.Error())
		return 1
	}
	ui.OK("logged in")
	return 0
}

func (r *runner) doAuthLogout() int {
	ti, _ := r.opt.Auth.Get()
	if ti != nil && ti.Source == "env" {
		ui.OK("token is provided by " + auth.EnvVar + " env var (nothing to delete)")
		return 0
	}
	if err := r.opt.Auth.Delete(); err != nil {
		ui.Fail("logout: " + err.Error())
		return 1
	}
	ui.OK("logged out")
	return 0
}

func (r *runner) doAuthStatus() int {
	out := ui.Stdout()
	ti, err := r.opt.Auth.Get()
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	if ti == nil {
		ui.Info("not logged in")
		fmt.Fprintln(out, "Run: basket auth login")
		return 0
	}
	fmt.Fprintf(out, "source: %s\n", ti.Source)
	if ti.ExpiresAt != nil {
		fmt.Fprintf(out, "expires: %s\n", ti.ExpiresAt.UTC().Format(time.RFC3339))
	} else {
		fmt.Fprintln(out, "expires: (unknown)")
	}
	fmt.Fprintln(out, "env override: "+auth.EnvVar)
	return 0
}

// doAuthWhoAmI prints the JWT payload when the token is one; it does not
// verify the signature.
func (r *runner) doAuthWhoAmI() int {
	ti, _ := r.opt.Auth.Get()
	if ti == nil {
		ui.Fail("not logged in. Run: basket auth login")
		return 2
	}
	out := ui.Stdout()
	if payload, ok := auth.Claims(ti.Token); ok {
		fmt.Fprintln(out, "JWT payload:")
		fmt.Fprintln(out, payload)
		return 0
	}
	fmt.Fprintln(out, "Opaque token (cannot introspect locally).")
	fmt.Fprintln(out, "source:", ti.Source)
	return 0
}
