package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/SaucesCode/file-organizer/config"
	"github.com/SaucesCode/file-organizer/internal/logger"
	"github.com/SaucesCode/file-organizer/internal/reporter"
)

var (
	// 命令行参数
	reportDir   string // 待扫描目录
	reportFile  string // 报告文件名
	reportDebug bool   // 调试模式
)

// reportCmd 代表 report 命令
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "递归扫描目录并生成文件清单报告",
	Long: `递归扫描目标目录并生成文本报告:
1. 按目录列出所有文件（按大小降序排列）
2. 记录每个文件的大小、修改时间和文件年龄
3. 按目录/文件名关键词和文件年龄标记可删除的候选文件
4. 汇总总文件数、总大小和可释放空间`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if reportDebug {
		level = "debug"
	}
	if err := logger.Init(level, cfg.Logging.File); err != nil {
		return err
	}

	name := reportFile
	if name == "" {
		name = cfg.Report.Filename
	}

	rep := reporter.New(afero.NewOsFs())
	path := rep.Generate(reportDir, name)
	if path == "" {
		return fmt.Errorf("报告生成失败: %s", reportDir)
	}

	fmt.Printf("报告已生成: %s\n", path)

	return nil
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportDir, "dir", "d", "", "待扫描的目录路径 (必需)")
	reportCmd.Flags().StringVarP(&reportFile, "output", "o", "", "报告文件名（默认使用配置中的文件名）")
	reportCmd.Flags().BoolVarP(&reportDebug, "debug", "v", false, "启用调试模式")

	if err := reportCmd.MarkFlagRequired("dir"); err != nil {
		fmt.Println("待扫描目录需要给出")
		return
	}
}
