package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"portprobe/config"
	"portprobe/logging"
	"portprobe/report"
	"portprobe/scan"
)

// 通过 -ldflags "-X portprobe/cmd.version=..." 覆盖
var version = "development version"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	var cfgFile string        //配置文件
	var versionRequested bool //打印版本

	cmd := &cobra.Command{
		Use:           "portprobe",
		Short:         "sequential TCP port reachability probe",
		Long:          "Probe TCP ports of a single host one by one and classify each as open, closed or filtered.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error { //主要的执行函数
			if versionRequested {
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return nil
			}
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
			closer := logging.Setup(cmd.ErrOrStderr(), v.GetBool(config.KeyVerbose), v.GetString(config.KeyLogFile))
			defer closer.Close()

			//所有配置错误都在探测之前返回
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	//带P的表示同时可接收缩写选项
	flags := cmd.Flags()
	flags.StringP(config.KeyIP, "i", "", "Target IP address (IPv4 or IPv6 literal)")
	flags.StringP(config.KeyPorts, "p", config.DefaultPorts, "Port or port range to scan, e.g. 80 or 20-100")
	flags.Int64P(config.KeyTimeout, "t", config.DefaultTimeoutMS, "Connect timeout in MS")
	flags.BoolP(config.KeyOpenOnly, "o", false, "Only show open ports")
	flags.BoolP(config.KeyVerbose, "v", false, "Enable verbose logging")
	flags.String(config.KeyLogFile, "", "Also write logs to this file (rotated)")
	flags.Bool(config.KeyNoColor, false, "Disable colored output")
	flags.StringVarP(&cfgFile, "config", "c", "", "Config file (yaml, toml or json)")
	flags.BoolVar(&versionRequested, "version", false, "Output version information and exit")

	bindFlags(v, cmd)
	return cmd
}

// bindFlags 让flag的优先级高于环境变量和配置文件
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for _, key := range []string{
		config.KeyIP, config.KeyPorts, config.KeyTimeout, config.KeyOpenOnly,
		config.KeyVerbose, config.KeyLogFile, config.KeyNoColor,
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			log.Fatalf("bind flag %s: %v", key, err)
		}
	}
}

func run(cmd *cobra.Command, cfg config.Config) error {
	start := time.Now()
	log.Infof("开始扫描 %s", cfg)

	out := cmd.OutOrStdout()
	console := report.NewConsole(out, cfg.OpenOnly, useColor(cfg, out))
	scanner := scan.NewConnectScanner(cfg.Target, cfg.Timeout)

	var reportErr error
	summary := scanner.Scan(cmd.Context(), cfg.Ports, func(res scan.Result) {
		if err := console.Report(res); err != nil && reportErr == nil {
			reportErr = err
		}
	})
	if reportErr != nil {
		return fmt.Errorf("write report: %w", reportErr)
	}
	if err := console.Finish(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	log.Infof("扫描完毕 %s 耗时:%v", summary, time.Since(start))
	return nil
}

// useColor 只有输出到终端且未禁用时才上色
func useColor(cfg config.Config, out io.Writer) bool {
	if cfg.NoColor || color.NoColor {
		return false
	}
	return out == io.Writer(os.Stdout)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
