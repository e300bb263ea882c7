package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/SaucesCode/file-organizer/config"
	"github.com/SaucesCode/file-organizer/internal/logger"
	"github.com/SaucesCode/file-organizer/internal/organizer"
	"github.com/SaucesCode/file-organizer/internal/reporter"
)

var (
	// 命令行参数
	runDir        string // 目标目录
	runReportFile string // 报告文件名
	runDebug      bool   // 调试模式
)

// runCmd 代表 run 命令
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "整理文件并生成清单报告",
	Long: `先按扩展名和文件名模式整理目标目录顶层的文件，
再递归扫描整理后的目录树并生成文件清单报告。`,
	RunE: runAll,
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if runDebug {
		level = "debug"
	}
	if err := logger.Init(level, cfg.Logging.File); err != nil {
		return err
	}

	startTime := time.Now()

	fs := afero.NewOsFs()

	org := organizer.New(fs)
	moved := org.Organize(runDir, true)
	fmt.Printf("共整理 %d 个文件\n", moved)

	name := runReportFile
	if name == "" {
		name = cfg.Report.Filename
	}

	rep := reporter.New(fs)
	path := rep.Generate(runDir, name)
	if path == "" {
		return fmt.Errorf("报告生成失败: %s", runDir)
	}

	logger.Info().
		Dur("duration", time.Since(startTime).Round(time.Millisecond)).
		Int("moved", moved).
		Str("report", path).
		Msg("整理和报告完成")

	fmt.Printf("报告已生成: %s\n", path)

	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runDir, "dir", "d", "", "目标目录路径 (必需)")
	runCmd.Flags().StringVarP(&runReportFile, "output", "o", "", "报告文件名（默认使用配置中的文件名）")
	runCmd.Flags().BoolVarP(&runDebug, "debug", "v", false, "启用调试模式")

	if err := runCmd.MarkFlagRequired("dir"); err != nil {
		fmt.Println("目标目录需要给出")
		return
	}
}
