package initchecker

import (
	"fmt"
	"strings"
)

// CheckInit проверяет зависимости обработчика при сборке в NewHandler.
// Провайдеры инициализируются в initializers строго по порядку,
// нарушение порядка останавливает запуск, а не первый вызов.
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: odd number of arguments")
	}
	missing := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("CheckInit: first argument of pair must be string")
		}
		if pairs[i+1] == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) != 0 {
		panic(fmt.Sprintf("dependencies not initialized: %s", strings.Join(missing, ", ")))
	}
}
