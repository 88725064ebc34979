package usecase

import "strconv"

// Helpers puros sobre slices. Nenhum deles altera o slice recebido: sempre
// devolvem um slice novo, e os elementos não tocados são copiados como estão.

func Prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

func Append[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

func IndexOf[T any](items []T, match func(T) bool) int {
	for i, it := range items {
		if match(it) {
			return i
		}
	}
	return -1
}

func Find[T any](items []T, match func(T) bool) (T, bool) {
	if i := IndexOf(items, match); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

func ReplaceAt[T any](items []T, i int, item T) []T {
	out := make([]T, len(items))
	copy(out, items)
	out[i] = item
	return out
}

func RemoveAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

// UniqueKey devolve base, ou base-2, base-3... até achar uma chave livre.
func UniqueKey(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for n := 2; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if !taken(candidate) {
			return candidate
		}
	}
}
