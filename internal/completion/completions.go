// Package completion emits shell completion scripts for ttyctl.
package completion

import (
	"fmt"
	"io"
	"strings"
)

// Shells lists the shells a script can be generated for.
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// Write writes the completion script for shell to w.
func Write(w io.Writer, shell string) error {
	var script string
	switch strings.ToLower(shell) {
	case "bash":
		script = BashCompletion
	case "zsh":
		script = ZshCompletion
	case "fish":
		script = FishCompletion
	case "powershell", "pwsh":
		script = PowershellCompletion
	default:
		return fmt.Errorf("unsupported shell: %s (supported: %s)", shell, strings.Join(Shells, ", "))
	}
	_, err := io.WriteString(w, script)
	return err
}

// BashCompletion is the bash completion script.
const BashCompletion = `# ttyctl bash completion script
# Installation: ttyctl completion bash > /etc/bash_completion.d/ttyctl

_ttyctl_completion() {
    local cur prev words cword
    _init_completion || return

    local commands="status size attrs raw exec completion"
    local flags="--log --no-defaults --theme --help"

    case "$prev" in
        --log)
            COMPREPLY=($(compgen -f -- "$cur"))
            return
            ;;
        --theme)
            COMPREPLY=($(compgen -W "nord vivid plain" -- "$cur"))
            return
            ;;
        -s|--stream)
            COMPREPLY=($(compgen -W "input output" -- "$cur"))
            return
            ;;
    esac

    case "${words[1]}" in
        attrs)
            COMPREPLY=($(compgen -W "--stream --raw --help" -- "$cur"))
            return
            ;;
        raw)
            COMPREPLY=($(compgen -W "--line-only --keep-signals --help" -- "$cur"))
            return
            ;;
        exec)
            COMPREPLY=($(compgen -c -- "$cur"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish powershell" -- "$cur"))
            return
            ;;
    esac

    if [[ $cword -eq 1 ]]; then
        COMPREPLY=($(compgen -W "$commands $flags" -- "$cur"))
    fi
}

complete -F _ttyctl_completion ttyctl
`

// ZshCompletion is the zsh completion script.
const ZshCompletion = `#compdef ttyctl
# ttyctl zsh completion script
# Installation: ttyctl completion zsh > ~/.zsh/completion/_ttyctl

_ttyctl() {
    local -a commands
    commands=(
        'status:Show terminal status of the standard streams'
        'size:Print columns and rows'
        'attrs:Dump terminal mode flags'
        'raw:Show key codes typed in raw mode'
        'exec:Run a command attached to a console'
        'completion:Generate shell completion scripts'
    )

    _arguments -C \
        '--log[Append mode transitions to a file]:path:_files' \
        '--no-defaults[Do not adjust console modes]' \
        '--theme[Output colours]:theme:(nord vivid plain)' \
        '--help[Show help]' \
        '1: :->cmds' \
        '*:: :->args'

    case $state in
        cmds)
            _describe -t commands 'ttyctl commands' commands
            ;;
        args)
            case $words[1] in
                attrs)
                    _arguments '(-s --stream)'{-s,--stream}'[Stream]:stream:(input output)' '--raw[Show raw mode]'
                    ;;
                raw)
                    _arguments '--line-only[Only disable line input]' '--keep-signals[Keep signal keys]'
                    ;;
                exec)
                    _normal
                    ;;
                completion)
                    _values 'shells' 'bash' 'zsh' 'fish' 'powershell'
                    ;;
            esac
            ;;
    esac
}

_ttyctl "$@"
`

// FishCompletion is the fish completion script.
const FishCompletion = `# ttyctl fish completion script
# Installation: ttyctl completion fish > ~/.config/fish/completions/ttyctl.fish

complete -c ttyctl -f

complete -c ttyctl -n "__fish_use_subcommand" -a "status" -d "Show terminal status"
complete -c ttyctl -n "__fish_use_subcommand" -a "size" -d "Print columns and rows"
complete -c ttyctl -n "__fish_use_subcommand" -a "attrs" -d "Dump terminal mode flags"
complete -c ttyctl -n "__fish_use_subcommand" -a "raw" -d "Show key codes in raw mode"
complete -c ttyctl -n "__fish_use_subcommand" -a "exec" -d "Run a command attached to a console"
complete -c ttyctl -n "__fish_use_subcommand" -a "completion" -d "Generate shell completions"

complete -c ttyctl -l log -d "Append mode transitions to a file" -r -F
complete -c ttyctl -l no-defaults -d "Do not adjust console modes"
complete -c ttyctl -l theme -d "Output colours" -a "nord vivid plain"

complete -c ttyctl -n "__fish_seen_subcommand_from attrs" -s s -l stream -d "Stream" -a "input output"
complete -c ttyctl -n "__fish_seen_subcommand_from attrs" -l raw -d "Show raw mode"
complete -c ttyctl -n "__fish_seen_subcommand_from raw" -l line-only -d "Only disable line input"
complete -c ttyctl -n "__fish_seen_subcommand_from raw" -l keep-signals -d "Keep signal keys"
complete -c ttyctl -n "__fish_seen_subcommand_from completion" -a "bash zsh fish powershell"
`

// PowershellCompletion is the PowerShell completion script.
const PowershellCompletion = `# ttyctl PowerShell completion script
# Installation: ttyctl completion powershell >> $PROFILE

Register-ArgumentCompleter -Native -CommandName ttyctl -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commands = @{
        'status' = 'Show terminal status of the standard streams'
        'size' = 'Print columns and rows'
        'attrs' = 'Dump terminal mode flags'
        'raw' = 'Show key codes typed in raw mode'
        'exec' = 'Run a command attached to a console'
        'completion' = 'Generate shell completion scripts'
    }
    $subFlags = @{
        'attrs' = @('--stream', '--raw')
        'raw' = @('--line-only', '--keep-signals')
        'completion' = @('bash', 'zsh', 'fish', 'powershell')
    }

    $elements = $commandAst.CommandElements | Select-Object -Skip 1 | ForEach-Object { $_.ToString() }
    $sub = $elements | Where-Object { $commands.ContainsKey($_) } | Select-Object -First 1

    if (-not $sub) {
        $commands.GetEnumerator() | Where-Object { $_.Key -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)
        }
        @('--log', '--no-defaults', '--theme') | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)
        }
        return
    }
    if ($subFlags.ContainsKey($sub)) {
        $subFlags[$sub] | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
    }
}
`
