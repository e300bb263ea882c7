package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "file-organizer",
	Short: "一个按扩展名和文件名模式整理文件并生成清理报告的工具",
	Long: `File Organizer 是一个命令行工具，用于整理目录中的文件并生成清理报告。

主要功能:
- 按扩展名将文件归类到类型目录（如 Documents/PDF、Images/JPEG）
- 按文件名模式归类（如 backup、draft、invoice 等关键词）
- 递归扫描目录树并生成文本报告，按大小和文件年龄标记可删除的候选文件
- 整理和报告可以单独执行，也可以组合执行`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
