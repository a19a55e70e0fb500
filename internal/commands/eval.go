package commands

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mandatum-dev/mandatum-go/pkg/config"
	"github.com/mandatum-dev/mandatum-go/pkg/database"
	"github.com/mandatum-dev/mandatum-go/pkg/discord"
	"github.com/mandatum-dev/mandatum-go/pkg/logger"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// createEvalCommand creates the owner-only eval command
func createEvalCommand() *discord.Command {
	return discord.NewCommand(
		"eval",
		"Evaluates Go code inside the running bot (dangerous)",
		"dev",
		evalHandler,
	).AsOwnerOnly()
}

func evalHandler(ctx *discord.CommandContext) error {
	start := time.Now()

	code := strings.Join(ctx.Args, " ")
	code = strings.TrimPrefix(code, "```go")
	code = strings.TrimPrefix(code, "```")
	code = strings.TrimSuffix(code, "```")
	code = strings.TrimSpace(code)

	if code == "" {
		_, err := ctx.Reply("Usage: eval <code>")
		return err
	}

	i := interp.New(interp.Options{})

	if err := i.Use(stdlib.Symbols); err != nil {
		_, err = ctx.Reply(fmt.Sprintf("Error loading stdlib: %v", err))
		return err
	}

	// Expose the bot internals as globals inside the interpreter
	botExports := map[string]reflect.Value{
		"Ctx":     reflect.ValueOf(ctx),
		"Bot":     reflect.ValueOf(ctx.Client),
		"Session": reflect.ValueOf(ctx.Session),
		"DB":      reflect.ValueOf(database.Get()),
		"Config":  reflect.ValueOf(config.Get()),
	}

	if err := i.Use(interp.Exports{
		"github.com/mandatum-dev/mandatum-go/internal/commands/commands": botExports,
	}); err != nil {
		_, err = ctx.Reply(fmt.Sprintf("Error registering variables: %v", err))
		return err
	}

	if _, err := i.Eval(`import . "github.com/mandatum-dev/mandatum-go/internal/commands"`); err != nil {
		_, err = ctx.Reply(fmt.Sprintf("Error importing variables: %v", err))
		return err
	}

	res, err := i.Eval(code)

	var output string
	if err != nil {
		output = fmt.Sprintf("**Execution error:**\n```go\n%v\n```", err)
	} else {
		var resStr string
		if res.IsValid() {
			resStr = fmt.Sprintf("%#v", res.Interface())
		} else {
			resStr = "nil"
		}
		if len(resStr) > 1900 {
			resStr = resStr[:1900] + "... (truncated)"
		}
		output = fmt.Sprintf("**Result:**\n```go\n%s\n```", resStr)
	}

	logger.Debug(fmt.Sprintf("Eval completed in %s", time.Since(start)), "DevEval")

	_, err = ctx.Reply(output)
	return err
}
