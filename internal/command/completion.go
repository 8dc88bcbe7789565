// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/runctl/runctl/internal/meta"
)

const bashCompletionScript = `# bash completion for runctl
_runctl()
{
    local cur prev
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "run ls show pick completion --help --version" -- "$cur") )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
    run|show)
        # Second position is the target name.
        if [[ ${COMP_CWORD} -eq 2 ]]; then
            COMPREPLY=( $(compgen -W "$(runctl ls -o json 2>/dev/null | sed -n 's/.*\"name\": \"\([^\"]*\)\".*/\1/p')" -- "$cur") )
            return 0
        fi
        if [[ "${COMP_WORDS[1]}" == "run" ]]; then
            local opts="--manifest -m --dry-run -n"
        else
            local opts="--manifest -m --output -o"
        fi
        ;;
    ls)
        local opts="--manifest -m --output -o --color -c"
        ;;
    pick)
        local opts="--manifest -m --dry-run -n"
        ;;
    completion)
        COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
        return 0
        ;;
    *)
        local opts=""
        ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _runctl runctl
`

const zshCompletionScript = `#compdef runctl

_runctl() {
  local -a cmds
  cmds=(
    'run:run a target'
    'ls:list targets grouped by category'
    'show:render a target without executing'
    'pick:interactively select and run a target'
    'completion:generate shell completion script'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'runctl commands' cmds
    return
  fi

  case $words[2] in
    run)
      _arguments -C \
        '(-m --manifest)'{-m,--manifest}'[extra target manifest]:manifest:_files' \
        '(-n --dry-run)'{-n,--dry-run}'[render steps without executing]' \
        '*:target:'
      ;;
    show)
      _arguments -C \
        '(-m --manifest)'{-m,--manifest}'[extra target manifest]:manifest:_files' \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)' \
        '*:target:'
      ;;
    ls)
      _arguments -C \
        '(-m --manifest)'{-m,--manifest}'[extra target manifest]:manifest:_files' \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)' \
        '(-c --color)'{-c,--color}'[enable colored output]'
      ;;
    pick)
      _arguments -C \
        '(-m --manifest)'{-m,--manifest}'[extra target manifest]:manifest:_files' \
        '(-n --dry-run)'{-n,--dry-run}'[render steps without executing]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _runctl runctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: runctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "runctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": m,
		},
		Action: completionCommandAction,
	}
}
