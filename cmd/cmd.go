package cmd

import (
	"github.com/named-data/ndnx/repo"
	"github.com/named-data/ndnx/std/utils"
	"github.com/named-data/ndnx/tools"
	"github.com/spf13/cobra"
)

const banner = `
  _   _ ____  _   _
 | \ | |  _ \| \ | |_  __
 |  \| | | | |  \| \ \/ /
 | |\  | |_| | |\  |>  <
 |_| \_|____/|_| \_/_/\_\

CCNx Binary XML Toolkit
`

var CmdNDNx = &cobra.Command{
	Use:     "ndnx",
	Short:   "CCNx Binary XML Toolkit",
	Long:    banner[1:],
	Version: utils.NDNxVersion,
}

func init() {
	cobra.EnableCommandSorting = false
	CmdNDNx.Root().CompletionOptions.HiddenDefaultCmd = true
	CmdNDNx.PersistentFlags().BoolP("help", "h", false, "Print usage")
	CmdNDNx.PersistentFlags().Lookup("help").Hidden = true

	CmdNDNx.AddGroup(&cobra.Group{ID: "daemons", Title: "Daemons"})
	CmdNDNx.AddCommand(cmdRepo())

	CmdNDNx.AddGroup(&cobra.Group{ID: "tools", Title: "Debug Tools"})
	CmdNDNx.AddCommand(tools.CmdDump)
	CmdNDNx.AddCommand(tools.CmdUri)
	CmdNDNx.AddCommand(tools.CmdName)
	CmdNDNx.AddCommand(tools.CmdPeek)
}

func cmdRepo() *cobra.Command {
	cmdRepo := &cobra.Command{
		Use:     "repo",
		Short:   "CCNx Content Repository",
		Long:    `Content repository answering Interests from stored ContentObjects`,
		GroupID: "daemons",
	}

	cmdRepo.AddGroup(&cobra.Group{ID: "run", Title: "Repository Daemon"})
	repo.CmdRepo.Use = "run CONFIG-FILE"
	repo.CmdRepo.Short = "Start the content repository"
	cmdRepo.AddCommand(repo.CmdRepo)

	return cmdRepo
}
