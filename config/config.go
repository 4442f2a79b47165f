package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
)

const configFile = "slist.conf"

func fileExists(filename string) bool {
	stat, err := os.Stat(filename)
	return err == nil && !stat.IsDir()
}

// Properties defines global config properties
type Properties struct {
	Separator  string `cfg:"separator"`   // 命令行输入中值之间的分隔符, 默认","
	LogPath    string `cfg:"log-path"`    // 日志目录, 为空时只输出到标准输出
	LogName    string `cfg:"log-name"`    // 日志文件名前缀, 默认slist
	LogLevel   string `cfg:"log-level"`   // 日志级别, 默认info
	PrintLimit int    `cfg:"print-limit"` // 输出链表时最多打印的元素个数, 0表示不限制
	Trace      bool   `cfg:"trace"`       // 是否以info级别记录脚本的每一步
}

// Props holds global config properties
var Props *Properties

func defaults() *Properties {
	return &Properties{
		Separator: ",",
		LogName:   "slist",
		LogLevel:  "info",
	}
}

func init() {
	Props = defaults()
}

// Load reads configFilename into Props. An empty name means ./slist.conf,
// which is skipped when absent.
func Load(configFilename string) error {
	if configFilename == "" {
		if !fileExists(configFile) {
			return nil
		}
		configFilename = configFile
	}
	return SetupConfig(configFilename)
}

func parse(src io.Reader) (*Properties, error) {
	config := defaults()

	// read config file
	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > 0 && line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 { // separator found
			key := line[0:pivot]
			value := strings.Trim(line[pivot+1:], " ")
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// parse format
	t := reflect.TypeOf(config)
	v := reflect.ValueOf(config)
	n := t.Elem().NumField()
	for i := 0; i < n; i++ {
		field := t.Elem().Field(i)
		fieldVal := v.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]
		if ok {
			// fill config
			switch field.Type.Kind() {
			case reflect.String:
				fieldVal.SetString(value)
			case reflect.Int:
				intValue, err := strconv.ParseInt(value, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("config %s: %w", key, err)
				}
				fieldVal.SetInt(intValue)
			case reflect.Bool:
				boolValue := "yes" == value
				fieldVal.SetBool(boolValue)
			default:
				panic("unhandled default case")
			}
		}
	}
	return config, nil
}

// SetupConfig read config file and store properties into Props
func SetupConfig(configFilename string) error {
	file, err := os.Open(configFilename)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()
	props, err := parse(file)
	if err != nil {
		return err
	}
	Props = props
	return nil
}
