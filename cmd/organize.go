package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/SaucesCode/file-organizer/config"
	"github.com/SaucesCode/file-organizer/internal/logger"
	"github.com/SaucesCode/file-organizer/internal/organizer"
)

var (
	// 命令行参数
	organizeDir   string // 待整理目录
	organizeName  bool   // 是否启用文件名模式匹配
	organizeDebug bool   // 调试模式
)

// organizeCmd 代表 organize 命令
var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "按扩展名（可选按文件名模式）整理目录顶层的文件",
	Long: `整理目标目录顶层的文件:
1. 读取目录的直接子项，跳过已有的子目录
2. 按文件名模式（启用 --by-name 时）或扩展名确定分类目录
3. 按需创建分类目录并移动文件
4. 目标位置重名时在文件名中插入秒级时间戳`,
	RunE: runOrganize,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if organizeDebug {
		level = "debug"
	}
	if err := logger.Init(level, cfg.Logging.File); err != nil {
		return err
	}

	startTime := time.Now()

	org := organizer.New(afero.NewOsFs())
	moved := org.Organize(organizeDir, organizeName)

	logger.Info().
		Dur("duration", time.Since(startTime).Round(time.Millisecond)).
		Int("moved", moved).
		Int("skipped", org.Stats.Skipped).
		Int("errors", org.Stats.Errors).
		Msg("整理完成")

	fmt.Printf("共整理 %d 个文件\n", moved)

	return nil
}

func init() {
	rootCmd.AddCommand(organizeCmd)

	organizeCmd.Flags().StringVarP(&organizeDir, "dir", "d", "", "待整理的目录路径 (必需)")
	organizeCmd.Flags().BoolVarP(&organizeName, "by-name", "n", false, "同时按文件名模式归类")
	organizeCmd.Flags().BoolVarP(&organizeDebug, "debug", "v", false, "启用调试模式")

	if err := organizeCmd.MarkFlagRequired("dir"); err != nil {
		fmt.Println("待整理目录需要给出")
		return
	}
}
