package scan

import (
	"context"
	"fmt"
	"net"
	"time"
)

// Scanner 探测一个目标上的端口,按顺序逐个回调结果
type Scanner interface {
	Probe(ctx context.Context, port uint16) Result
	Scan(ctx context.Context, ports []uint16, fn func(Result)) HostResult
}

// Result 单个端口的探测结果,Err 只用于诊断,从不中断扫描
type Result struct {
	Port    uint16
	State   PortState
	Latency time.Duration //连接耗时
	Err     error
}

// HostResult 一次扫描的汇总
type HostResult struct {
	Host net.IP
	//三种状态,开启,关闭,过滤
	Open     []uint16
	Closed   []uint16
	Filtered []uint16

	Elapsed time.Duration
}

func NewHostResult(host net.IP) HostResult { //初始化
	return HostResult{
		Host:     host,
		Open:     []uint16{},
		Closed:   []uint16{},
		Filtered: []uint16{},
	}
}

func (r *HostResult) add(res Result) {
	switch res.State {
	case PortOpen:
		r.Open = append(r.Open, res.Port)
	case PortClosed:
		r.Closed = append(r.Closed, res.Port)
	case PortFiltered:
		r.Filtered = append(r.Filtered, res.Port)
	}
}

func (r HostResult) Total() int {
	return len(r.Open) + len(r.Closed) + len(r.Filtered)
}

//实现Stringer接口
func (r HostResult) String() string {
	return fmt.Sprintf("%s: %d open, %d closed, %d filtered (%d ports in %v)",
		r.Host.String(), len(r.Open), len(r.Closed), len(r.Filtered), r.Total(), r.Elapsed)
}
