package scan

import (
	"context"
	"errors"
	"net"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// Dialer 建立TCP连接,测试中可替换
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// ConnectScanner 是TCP连接扫描器,严格顺序地一个端口一个端口探测
type ConnectScanner struct {
	target  *Target
	timeout time.Duration
	dialer  Dialer
}

var _ Scanner = (*ConnectScanner)(nil)

// NewConnectScanner 创建一个TCP扫描器,传入解析后的目标和连接超时
func NewConnectScanner(target *Target, timeout time.Duration) *ConnectScanner {
	return &ConnectScanner{
		target:  target,
		timeout: timeout,
		dialer: &net.Dialer{
			Timeout:   timeout,
			KeepAlive: -1, //扫描不需要保持连接
		},
	}
}

// WithDialer 替换默认的拨号器
func (c *ConnectScanner) WithDialer(d Dialer) *ConnectScanner {
	c.dialer = d
	return c
}

// Scan 按给定顺序探测每个端口,每完成一个就回调fn,单个端口的失败不会中断扫描.
// ctx 只在两次探测之间检查
func (c *ConnectScanner) Scan(ctx context.Context, ports []uint16, fn func(Result)) HostResult {
	result := NewHostResult(c.target.IP())
	start := time.Now()

	for _, port := range ports {
		if err := ctx.Err(); err != nil {
			log.Debugf("扫描中止: %v", err)
			break
		}
		res := c.Probe(ctx, port)
		result.add(res)
		if fn != nil {
			fn(res)
		}
	}

	result.Elapsed = time.Since(start)
	return result
}

// Probe 发起tcp连接,并分类
func (c *ConnectScanner) Probe(ctx context.Context, port uint16) Result {
	addr := c.target.Addr(port)
	log.Debugf("开始扫描 %s", addr)

	dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	conn, err := c.dialer.DialContext(dialCtx, "tcp", addr)
	res := Result{Port: port, Latency: time.Since(start)}
	if err != nil {
		res.State = classify(err)
		res.Err = err
		log.WithFields(log.Fields{
			"addr":  addr,
			"state": res.State,
		}).Debugf("连接失败: %v", err)
		return res
	}

	_ = conn.Close() //不发送也不读取任何数据
	res.State = PortOpen
	log.Debugf("%s is OPEN! (%v)", addr, res.Latency)
	return res
}

// classify 超时视为过滤,其余错误(拒绝、不可达等)一律视为关闭
func classify(err error) PortState {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return PortFiltered
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return PortFiltered
	}
	return PortClosed
}
