package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/spf13/afero"
)

func writeTestFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
	}
}

func TestOrganize_ByExtension(t *testing.T) {
	tempDir := t.TempDir()

	writeTestFiles(t, tempDir, map[string]string{
		"photo.JPG":        "jpeg data",
		"notes_backup.txt": "notes",
		"script.py":        "print('hi')",
		"unknown.xyz":      "???",
	})

	org := New(afero.NewOsFs())
	moved := org.Organize(tempDir, false)

	if moved != 4 {
		t.Errorf("Expected 4 moved files, got %d", moved)
	}

	expected := map[string]string{
		"photo.JPG":        "Images/JPEG",
		"notes_backup.txt": "Documents/Text",
		"script.py":        "Programming/Python",
		"unknown.xyz":      "Other/xyz",
	}
	for name, category := range expected {
		target := filepath.Join(tempDir, filepath.FromSlash(category), name)
		if _, err := os.Stat(target); err != nil {
			t.Errorf("Expected %s to be moved to %s: %v", name, category, err)
		}
	}
}

func TestOrganize_ByName(t *testing.T) {
	tempDir := t.TempDir()

	writeTestFiles(t, tempDir, map[string]string{
		"notes_backup.txt": "notes",
		"photo.JPG":        "jpeg data",
	})

	org := New(afero.NewOsFs())
	moved := org.Organize(tempDir, true)

	if moved != 2 {
		t.Errorf("Expected 2 moved files, got %d", moved)
	}

	// 文件名模式 backup 优先于 .txt 扩展名规则
	target := filepath.Join(tempDir, "BackupFiles", "notes_backup.txt")
	if _, err := os.Stat(target); err != nil {
		t.Errorf("Expected notes_backup.txt in BackupFiles: %v", err)
	}

	// 未命中模式的文件仍按扩展名归类
	target = filepath.Join(tempDir, "Images", "JPEG", "photo.JPG")
	if _, err := os.Stat(target); err != nil {
		t.Errorf("Expected photo.JPG in Images/JPEG: %v", err)
	}
}

func TestOrganize_MissingDirectory(t *testing.T) {
	org := New(afero.NewOsFs())
	moved := org.Organize(filepath.Join(t.TempDir(), "does-not-exist"), false)

	if moved != 0 {
		t.Errorf("Expected 0 moved files for missing directory, got %d", moved)
	}
}

// 二次运行不应从分类目录中再移动任何文件
func TestOrganize_Idempotent(t *testing.T) {
	tempDir := t.TempDir()

	writeTestFiles(t, tempDir, map[string]string{
		"photo.jpg": "jpeg data",
		"notes.txt": "notes",
	})

	first := New(afero.NewOsFs())
	if moved := first.Organize(tempDir, false); moved != 2 {
		t.Fatalf("Expected 2 moved files on first run, got %d", moved)
	}

	second := New(afero.NewOsFs())
	if moved := second.Organize(tempDir, false); moved != 0 {
		t.Errorf("Expected 0 moved files on second run, got %d", moved)
	}

	if second.Stats.Skipped == 0 {
		t.Error("Expected category directories to be skipped on second run")
	}
}

func TestOrganize_CollisionTimestamp(t *testing.T) {
	tempDir := t.TempDir()

	// 目标位置预先放置同名文件
	targetDir := filepath.Join(tempDir, "Documents", "Text")
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		t.Fatalf("创建目标目录失败: %v", err)
	}
	if err := os.WriteFile(filepath.Join(targetDir, "notes.txt"), []byte("original"), 0644); err != nil {
		t.Fatalf("创建已有文件失败: %v", err)
	}

	writeTestFiles(t, tempDir, map[string]string{
		"notes.txt": "incoming",
	})

	org := New(afero.NewOsFs())
	if moved := org.Organize(tempDir, false); moved != 1 {
		t.Fatalf("Expected 1 moved file, got %d", moved)
	}

	// 原有文件保持不变
	content, err := os.ReadFile(filepath.Join(targetDir, "notes.txt"))
	if err != nil {
		t.Fatalf("读取原有文件失败: %v", err)
	}
	if string(content) != "original" {
		t.Errorf("Expected existing file to be untouched, got %q", content)
	}

	// 移入的文件带有 14 位时间戳后缀
	entries, err := os.ReadDir(targetDir)
	if err != nil {
		t.Fatalf("读取目标目录失败: %v", err)
	}

	pattern := regexp.MustCompile(`^notes_\d{8}_\d{6}\.txt$`)
	found := false
	for _, entry := range entries {
		if pattern.MatchString(entry.Name()) {
			found = true

			content, err := os.ReadFile(filepath.Join(targetDir, entry.Name()))
			if err != nil {
				t.Fatalf("读取移入文件失败: %v", err)
			}
			if string(content) != "incoming" {
				t.Errorf("Expected renamed file content %q, got %q", "incoming", content)
			}
		}
	}
	if !found {
		t.Errorf("Expected a timestamped file in %s, got %v", targetDir, entries)
	}
}

// 单个文件移动失败不应中断剩余文件的处理
func TestOrganize_ContinueOnMoveError(t *testing.T) {
	tempDir := t.TempDir()

	// 名为 Other 的无扩展名文件会挡住自己的分类目录 Other/No_Extension
	writeTestFiles(t, tempDir, map[string]string{
		"Other":     "blocked",
		"notes.txt": "notes",
		"photo.jpg": "jpeg data",
	})

	org := New(afero.NewOsFs())
	moved := org.Organize(tempDir, false)

	if moved != 2 {
		t.Errorf("Expected 2 moved files, got %d", moved)
	}
	if org.Stats.Errors != 1 {
		t.Errorf("Expected 1 error, got %d", org.Stats.Errors)
	}

	// 健康的文件仍被归类
	for name, category := range map[string]string{
		"notes.txt": "Documents/Text",
		"photo.jpg": "Images/JPEG",
	} {
		target := filepath.Join(tempDir, filepath.FromSlash(category), name)
		if _, err := os.Stat(target); err != nil {
			t.Errorf("Expected %s to be moved to %s: %v", name, category, err)
		}
	}

	// 失败的文件留在原处
	if _, err := os.Stat(filepath.Join(tempDir, "Other")); err != nil {
		t.Errorf("Expected Other to stay in place: %v", err)
	}
}

// 包装 afero.Fs，使特定名称的 Open 调用失败
type openFailFs struct {
	afero.Fs
	failName string
}

func (f *openFailFs) Open(name string) (afero.File, error) {
	if filepath.Base(name) == f.failName {
		return nil, fmt.Errorf("open %s: permission denied", name)
	}
	return f.Fs.Open(name)
}

// 目录列举失败时返回已累计的数量，不向上抛错
func TestOrganize_ListingFailure(t *testing.T) {
	tempDir := t.TempDir()

	writeTestFiles(t, tempDir, map[string]string{
		"notes.txt": "notes",
	})

	fs := &openFailFs{Fs: afero.NewOsFs(), failName: filepath.Base(tempDir)}
	org := New(fs)

	if moved := org.Organize(tempDir, false); moved != 0 {
		t.Errorf("Expected 0 moved files when listing fails, got %d", moved)
	}

	// 文件未被移动
	if _, err := os.Stat(filepath.Join(tempDir, "notes.txt")); err != nil {
		t.Errorf("Expected notes.txt to stay in place: %v", err)
	}
}

// Stats 只统计当次调用，复用同一个 Organizer 不应跨调用累计
func TestOrganize_StatsPerInvocation(t *testing.T) {
	tempDir := t.TempDir()

	writeTestFiles(t, tempDir, map[string]string{
		"photo.jpg": "jpeg data",
		"notes.txt": "notes",
	})

	org := New(afero.NewOsFs())
	if moved := org.Organize(tempDir, false); moved != 2 {
		t.Fatalf("Expected 2 moved files on first run, got %d", moved)
	}

	if moved := org.Organize(tempDir, false); moved != 0 {
		t.Errorf("Expected 0 moved files on second run, got %d", moved)
	}
	if org.Stats.Moved != 0 {
		t.Errorf("Expected Moved to reset between runs, got %d", org.Stats.Moved)
	}
	if org.Stats.Total != 0 {
		t.Errorf("Expected Total to reset between runs, got %d", org.Stats.Total)
	}
}

func TestSplitName(t *testing.T) {
	testCases := []struct {
		filename string
		base     string
		ext      string
	}{
		{"notes.txt", "notes", ".txt"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".bashrc", ".bashrc", ""},
	}

	for _, tc := range testCases {
		base, ext := splitName(tc.filename)
		if base != tc.base || ext != tc.ext {
			t.Errorf("splitName(%q): expected (%q, %q), got (%q, %q)",
				tc.filename, tc.base, tc.ext, base, ext)
		}
	}
}
