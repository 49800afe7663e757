package service

import (
	"encoding/json"
	"strconv"
	"strings"
)

// JSON 값을 문자열로 변환, 값이 없으면 ""
// 숫자는 최단 표현 (1 -> "1")
func stringify(v any) string {
	if v == nil {
		return ""
	}
	return textOf(v)
}

// 클라이언트(JS) String() 과 같은 변환
// null -> "null", 배열 -> "," 로 연결 (안의 null 은 빈 문자열), 객체 -> "[object Object]"
func textOf(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case []any:
		parts := make([]string, len(x))
		for i, el := range x {
			if el != nil {
				parts[i] = textOf(el)
			}
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

// 문자열 목록으로 변환
// 배열은 원소별 변환 후 중복 제거, 문자열 하나는 한 개짜리 목록, 그 외는 빈 목록
func stringList(v any) []string {
	switch x := v.(type) {
	case string:
		return []string{x}
	case []string:
		return dedupe(x)
	case []any:
		out := make([]string, 0, len(x))
		for _, el := range x {
			out = append(out, textOf(el))
		}
		return dedupe(out)
	default:
		return []string{}
	}
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// 1, -1 또는 "1", "-1" 만 허용
func voteValue(v any) (int, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	switch f {
	case 1:
		return 1, true
	case -1:
		return -1, true
	}
	return 0, false
}

// 빈 문자열이 아닌 문자열, 0 이 아닌 숫자만 허용
func itemID(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, x != ""
	case float64:
		return stringify(x), x != 0
	case int:
		return strconv.Itoa(x), x != 0
	case json.Number:
		f, err := x.Float64()
		return x.String(), err == nil && f != 0
	}
	return "", false
}
