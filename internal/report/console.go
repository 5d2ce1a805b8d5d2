package report

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vedantwpatil/mouse-keepalive/internal/keepalive"
)

// Console prints every record in both Chinese and English for the terminal.
type Console struct {
	w       io.Writer
	verbose bool
	opts    keepalive.Options
	mu      sync.Mutex

	title lipgloss.Style
	dim   lipgloss.Style
	warn  lipgloss.Style
	good  lipgloss.Style
}

func NewConsole(w io.Writer, verbose bool) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:       w,
		verbose: verbose,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("241")),
		warn:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		good:    r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

func (c *Console) println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, s)
}

func (c *Console) ReportStart(opts keepalive.Options) {
	c.opts = opts

	c.println(c.title.Render("开始自动移动鼠标... / Starting mouse keepalive..."))
	interval := keepalive.Seconds(opts.Interval)
	c.println(fmt.Sprintf("移动间隔: %d 秒 / Interval: %d seconds", interval, interval))
	if opts.Duration > 0 {
		d := keepalive.Seconds(opts.Duration)
		c.println(fmt.Sprintf("运行时长: %d 秒 / Duration: %d seconds", d, d))
	} else {
		c.println("运行时长: 无限（按 Ctrl+C 停止） / Duration: Infinite (Press Ctrl+C to stop)")
	}
	c.println(fmt.Sprintf("操作系统: %s / OS: %s", runtime.GOOS, runtime.GOOS))
	if c.verbose {
		c.println("详细模式: 已启用 / Verbose mode: Enabled")
	}
	c.println(c.dim.Render(strings.Repeat("-", 50)))
}

func (c *Console) ReportTick(t keepalive.Tick) {
	elapsed := keepalive.Seconds(t.Elapsed)
	if !c.verbose {
		c.println(fmt.Sprintf("[%ds] 已移动鼠标 %d 次 / Moved mouse %d times", elapsed, t.Moves, t.Moves))
		return
	}
	c.println(fmt.Sprintf("[%ds] 已移动鼠标 %d 次 (当前位置: %d, %d)", elapsed, t.Moves, t.X, t.Y))
	c.println(fmt.Sprintf("[%ds] Moved mouse %d times (current position: %d, %d)", elapsed, t.Moves, t.X, t.Y))
}

func (c *Console) ReportError(err error) {
	c.println(c.warn.Render(fmt.Sprintf("错误: 鼠标操作失败 / Error: %v", err)))
}

func (c *Console) ReportComplete(s keepalive.Summary) {
	c.println("")
	switch s.Cause {
	case keepalive.Completed:
		d := keepalive.Seconds(c.opts.Duration)
		c.println(c.good.Render(fmt.Sprintf("达到运行时长 %d 秒，程序退出", d)))
		c.println(c.good.Render(fmt.Sprintf("Duration %d seconds reached, exiting", d)))
	case keepalive.Interrupted:
		c.println("程序被用户中断")
		c.println("Program interrupted by user")
	case keepalive.Failed:
		c.println(c.warn.Render("程序因错误退出"))
		c.println(c.warn.Render("Exiting after an error"))
	}
	elapsed := keepalive.Seconds(s.Elapsed)
	c.println(fmt.Sprintf("总共移动鼠标 %d 次 / Total moves: %d", s.Moves, s.Moves))
	c.println(fmt.Sprintf("运行时长: %d 秒 / Duration: %d seconds", elapsed, elapsed))
}
