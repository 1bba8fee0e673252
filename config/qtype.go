package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/miekg/dns"
)

// QType is a DNS record type that can be parsed from its textual name.
type QType dns.Type

func (c QType) String() string {
	return dns.Type(c).String()
}

// UnmarshalText implements `encoding.TextUnmarshaler`.
func (c *QType) UnmarshalText(data []byte) error {
	input := string(data)

	t, found := dns.StringToType[input]
	if !found {
		types := make([]string, 0, len(dns.StringToType))
		for name := range dns.StringToType {
			types = append(types, name)
		}

		sort.Strings(types)

		return fmt.Errorf("unknown DNS record type: '%s'. Please use following types '%s'",
			input, strings.Join(types, ", "))
	}

	*c = QType(t)

	return nil
}

// UnmarshalYAML implements `yaml.Unmarshaler`.
func (c *QType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var input string
	if err := unmarshal(&input); err != nil {
		return err
	}

	return c.UnmarshalText([]byte(input))
}

// QTypeList is an ordered list of DNS record types. The order is
// significant: conflict probes short-circuit on the first matching type.
type QTypeList []QType

func NewQTypeList(qTypes ...dns.Type) QTypeList {
	l := make(QTypeList, 0, len(qTypes))

	for _, qType := range qTypes {
		l = append(l, QType(qType))
	}

	return l
}

// Types returns the list as plain dns.Type values, preserving order.
func (l QTypeList) Types() []dns.Type {
	types := make([]dns.Type, 0, len(l))

	for _, qType := range l {
		types = append(types, dns.Type(qType))
	}

	return types
}
