package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"portprobe/scan"
)

const noOpenPorts = "❌ No open ports found in the specified range."

// Console 逐行输出端口状态,扫描进行中即可看到结果
type Console struct {
	w        io.Writer
	openOnly bool
	open     int

	openColor     *color.Color
	closedColor   *color.Color
	filteredColor *color.Color
}

// NewConsole openOnly为true时只输出开放端口,useColor控制是否输出颜色
func NewConsole(w io.Writer, openOnly, useColor bool) *Console {
	c := &Console{
		w:             w,
		openOnly:      openOnly,
		openColor:     color.New(color.FgGreen),
		closedColor:   color.New(color.FgRed),
		filteredColor: color.New(color.FgYellow),
	}
	for _, cl := range []*color.Color{c.openColor, c.closedColor, c.filteredColor} {
		if useColor {
			cl.EnableColor()
		} else {
			cl.DisableColor()
		}
	}
	return c
}

// Report 输出一个端口的结果
func (c *Console) Report(res scan.Result) error {
	if res.State == scan.PortOpen {
		c.open++
	} else if c.openOnly {
		return nil
	}

	cl, line := c.line(res)
	if _, err := cl.Fprint(c.w, line); err != nil {
		return err
	}
	_, err := fmt.Fprintln(c.w)
	return err
}

// Finish 在所有端口输出完后调用,openOnly且没有开放端口时输出提示
func (c *Console) Finish() error {
	if c.openOnly && c.open == 0 {
		_, err := fmt.Fprintln(c.w, noOpenPorts)
		return err
	}
	return nil
}

func (c *Console) line(res scan.Result) (*color.Color, string) {
	switch res.State {
	case scan.PortOpen:
		line := fmt.Sprintf("✅ Port %d OPEN", res.Port)
		if svc := scan.DescribePort(res.Port); svc != "" {
			line = fmt.Sprintf("%s (%s)", line, svc)
		}
		return c.openColor, line
	case scan.PortFiltered:
		return c.filteredColor, fmt.Sprintf("⚠️  Port %d FILTERED or no response", res.Port)
	default:
		return c.closedColor, fmt.Sprintf("❌ Port %d CLOSED", res.Port)
	}
}
