package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

const ianaCSV = "https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv"

//用于更新已知端口列表,在仓库根目录执行 go run ./tools
func main() {
	resp, err := http.Get(ianaCSV)
	if err != nil {
		log.Fatalf("下载端口列表失败: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("下载端口列表失败: %s", resp.Status)
	}

	output, err := os.Create("./scan/known.go") //以执行目录为准
	if err != nil {
		log.Fatal(err)
	}
	defer output.Close()

	n, err := writeKnownPorts(resp.Body, output)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("写入 %d 个已知端口", n)
}

// writeKnownPorts 把IANA的csv转换成scan包里的knownPorts表,只保留tcp,每个端口取第一个服务名
func writeKnownPorts(r io.Reader, w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "package scan\n\n// data from %s\n// regenerate the full table with `go run ./tools`\nvar knownPorts = map[uint16]string{", ianaCSV)

	seen := map[uint16]bool{}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}

		if len(record) < 3 || record[2] != "tcp" || record[0] == "" || record[1] == "" {
			continue
		}
		port, err := strconv.ParseUint(record[1], 10, 16)
		if err != nil || seen[uint16(port)] { //范围端口如"6000-6063"直接跳过
			continue
		}
		seen[uint16(port)] = true
		fmt.Fprintf(bw, "\n\t%d: %q,", port, record[0])
	}

	fmt.Fprint(bw, "\n}\n")
	return len(seen), bw.Flush()
}
