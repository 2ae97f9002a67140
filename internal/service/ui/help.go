package ui

import "github.com/spf13/cobra"

// CustomizeHelp replaces cobra's help output with a styled template.
func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableInheritedFlags}}{{StyleTitle "GLOBAL FLAGS"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
