package service

import "fmt"

func reminderEmailTemplate(message, goalText, appName string) (string, string) {
	subject := fmt.Sprintf("%s reminder: %s", appName, goalText)
	body := fmt.Sprintf(`%s

Open %s and let me know how it went today.
Progress, not perfection.

Best,
%s`, message, appName, appName)

	return subject, body
}
