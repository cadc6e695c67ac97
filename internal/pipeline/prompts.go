package pipeline

import "fmt"

// Token budgets per stage.
const (
	summaryMaxTokens  = 300
	keywordsMaxTokens = 200
	mcqMaxTokens      = 1500
)

func summaryPrompt(text string) string {
	return "Summarize the following text in 2-3 concise sentences:\n\n" + text
}

func keywordsPrompt(text string, count int) string {
	return fmt.Sprintf("Extract exactly %d important keywords from the following text. ", count) +
		"Return only the keywords separated by commas, nothing else:\n\n" + text
}

// mcqPrompt fixes the Q:/A:-D:/ANSWER: layout that mcq.Parse expects.
func mcqPrompt(text string, count int) string {
	return fmt.Sprintf("Create %d multiple-choice questions based on the following text. ", count) +
		"Provide exactly 4 options (A, B, C, D) and an ANSWER line with the correct letter. " +
		"Format each question like:\nQ: <question>\nA: <opt A>\nB: <opt B>\nC: <opt C>\nD: <opt D>\nANSWER: <letter>\n\n" +
		"Text:\n" + text
}
