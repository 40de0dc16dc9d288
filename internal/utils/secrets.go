package utils

import (
	"fmt"
	"os"
	"strings"
)

// ReadSecret читает обязательный секрет из файла в стандартном пути Docker Secrets.
// Если файла нет, используется переменная окружения envName как fallback для локального запуска.
func ReadSecret(secretName, envName string) (string, error) {
	secret := readSecretFile(secretName)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv(envName))
	}
	if secret == "" {
		return "", fmt.Errorf("secret %s is not set (neither /run/secrets/%s nor env %s)", secretName, secretName, envName)
	}
	return secret, nil
}

// ReadSecretOptional читает необязательный секрет. Отсутствие секрета не является
// ошибкой: пустая строка означает "не настроено", и вызывающий код сам решает,
// что с этим делать (ошибка конфигурации на уровне запроса, а не падение процесса).
func ReadSecretOptional(secretName, envName string) string {
	if secret := readSecretFile(secretName); secret != "" {
		return secret
	}
	return strings.TrimSpace(os.Getenv(envName))
}

func readSecretFile(secretName string) string {
	filePath := fmt.Sprintf("/run/secrets/%s", secretName)
	secretBytes, err := os.ReadFile(filePath)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(secretBytes))
}
