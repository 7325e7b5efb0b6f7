// Copyright 2025 The Papyrus Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dump

import (
	"fmt"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// doc is an ordered mapping or a list, the intermediate form of a dump.
//
// Values are strings, ints, bools or nested docs.
type doc struct {
	keys   []string
	values []any

	array bool
	// Whether to write this doc on one line in YAML.
	flow bool
}

func (d *doc) push(key string, value any) {
	d.keys = append(d.keys, key)
	d.values = append(d.values, value)
}

// yaml converts d into a YAML node.
func (d *doc) yaml() *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if d.array {
		node.Kind = yaml.SequenceNode
	}
	if d.flow {
		node.Style = yaml.FlowStyle
	}

	for i, v := range d.values {
		if !d.array {
			node.Content = append(node.Content, scalar(d.keys[i]))
		}
		node.Content = append(node.Content, yamlValue(v))
	}
	return node
}

func yamlValue(v any) *yaml.Node {
	switch v := v.(type) {
	case *doc:
		return v.yaml()
	case string:
		return scalar(v)
	case int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}
	default:
		panic(fmt.Sprintf("papyrus/dump: unexpected value %T", v))
	}
}

// scalar returns a string scalar. The encoder quotes it whenever YAML would
// otherwise read it as something else.
func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// proto converts d into a protobuf JSON value.
func (d *doc) proto() *structpb.Value {
	if d.array {
		list := &structpb.ListValue{Values: make([]*structpb.Value, len(d.values))}
		for i, v := range d.values {
			list.Values[i] = protoValue(v)
		}
		return structpb.NewListValue(list)
	}

	fields := make(map[string]*structpb.Value, len(d.values))
	for i, v := range d.values {
		fields[d.keys[i]] = protoValue(v)
	}
	return structpb.NewStructValue(&structpb.Struct{Fields: fields})
}

func protoValue(v any) *structpb.Value {
	switch v := v.(type) {
	case *doc:
		return v.proto()
	case string:
		return structpb.NewStringValue(v)
	case int:
		return structpb.NewNumberValue(float64(v))
	case bool:
		return structpb.NewBoolValue(v)
	default:
		panic(fmt.Sprintf("papyrus/dump: unexpected value %T", v))
	}
}
