package config

import (
	"bufio"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

/**
 * @Author: wanglei
 * @File: config
 * @Version: 1.0.0
 * @Description: 命令行驱动程序的配置
 * @Date: 2023/07/12 17:23
 */

const (
	ElemTypeString  = "string"
	ElemTypeDecimal = "decimal"
)

// 全局配置参数
type Properties struct {
	LogLevel string `cfg:"loglevel"`
	LogDir   string `cfg:"logdir"`
	LogName  string `cfg:"logname"`
	Prompt   string `cfg:"prompt"`
	Echo     bool   `cfg:"echo"`
	ElemType string `cfg:"elemtype"`

	Scripts []string `cfg:"scripts"`
}

var Current *Properties

func init() {
	Current = Default()
}

func Default() *Properties {
	return &Properties{
		LogLevel: "info",
		LogName:  "indexlist",
		Prompt:   "> ",
		ElemType: ElemTypeString,
	}
}

// Parse 未出现的配置项保留默认值
func Parse(src io.Reader) (*Properties, error) {
	config := Default()

	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " \t")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[:pivot]
			value := strings.Trim(line[pivot+1:], " \t")
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read config")
	}

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
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Int:
			intValue, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "config %s", key)
			}
			fieldVal.SetInt(intValue)
		case reflect.Bool:
			fieldVal.SetBool("yes" == value)
		case reflect.Slice:
			if field.Type.Elem().Kind() == reflect.String {
				slice := strings.Split(value, ",")
				for j := range slice {
					slice[j] = strings.TrimSpace(slice[j])
				}
				fieldVal.Set(reflect.ValueOf(slice))
			}
		}
	}

	switch config.ElemType {
	case ElemTypeString, ElemTypeDecimal:
	default:
		return nil, errors.Errorf("config elemtype: unsupported %q", config.ElemType)
	}
	return config, nil
}

func SetupConfig(configFilename string) error {
	file, err := os.Open(configFilename)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer file.Close()
	props, err := Parse(file)
	if err != nil {
		return errors.Wrap(err, configFilename)
	}
	Current = props
	return nil
}
