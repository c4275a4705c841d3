package scan

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPortSpec 端口描述无法解析,扫描开始前返回
var ErrInvalidPortSpec = errors.New("invalid port specification")

// ResolvePorts 把 "80" 或 "20-100" 解析为升序的端口列表.
// 起始大于结束、端口为0或者任何无法解析的输入都返回 ErrInvalidPortSpec,不会替换成默认端口
func ResolvePorts(spec string) ([]uint16, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPortSpec)
	}

	if !strings.Contains(spec, "-") { //单个端口
		port, err := parsePort(spec)
		if err != nil {
			return nil, err
		}
		return []uint16{port}, nil
	}

	parts := strings.Split(spec, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: invalid range '%s'", ErrInvalidPortSpec, spec)
	}
	start, err := parsePort(parts[0])
	if err != nil {
		return nil, err
	}
	end, err := parsePort(parts[1])
	if err != nil {
		return nil, err
	}
	if start > end {
		return nil, fmt.Errorf("%w: inverted range %d-%d", ErrInvalidPortSpec, start, end)
	}

	ports := make([]uint16, 0, int(end)-int(start)+1)
	for p := int(start); p <= int(end); p++ { //用int循环,避免end=65535时溢出
		ports = append(ports, uint16(p))
	}
	return ports, nil
}

func parsePort(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid port number '%s'", ErrInvalidPortSpec, s)
	}
	if v == 0 {
		return 0, fmt.Errorf("%w: port number must be between 1 and 65535", ErrInvalidPortSpec)
	}
	return uint16(v), nil
}
