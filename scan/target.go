package scan

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ErrInvalidAddress 目标不是合法的IP字面量,不做域名解析
var ErrInvalidAddress = errors.New("invalid target address")

type Target struct {
	ip net.IP //net包中的IP,是一个字节切片,可以是IPv4 IPv6
}

// ParseTarget 解析目标IP,只接受IPv4/IPv6字面量
func ParseTarget(target string) (*Target, error) {
	raw := strings.TrimSpace(target)
	ip := net.ParseIP(raw)
	if ip == nil {
		return nil, fmt.Errorf("%w: '%s' is not an IP literal", ErrInvalidAddress, target)
	}
	if v4 := ip.To4(); v4 != nil { //IPv4统一为4字节
		ip = v4
	}
	return &Target{ip: ip}, nil
}

func (t *Target) IP() net.IP {
	tIP := make(net.IP, len(t.ip))
	copy(tIP, t.ip) //防止调用方修改
	return tIP
}

// Addr 返回 host:port,IPv6会加上方括号
func (t *Target) Addr(port uint16) string {
	return net.JoinHostPort(t.ip.String(), strconv.Itoa(int(port)))
}

func (t *Target) String() string {
	return t.ip.String()
}
