package service

import (
	"fmt"
	"strings"

	"magicwriting/internal/library"
	"magicwriting/internal/llm"
	"magicwriting/internal/models"
)

// GenerationRequest carries the writer's input for one assistant task
type GenerationRequest struct {
	Topic string
	Grade models.GradeBand
	Essay string
}

const systemPrompt = "你是一位耐心、鼓励式的小学和初中英语写作老师，回答要适合孩子阅读。"

// buildMessages composes the chat messages for task. Topic and grade are inserted verbatim.
func buildMessages(task models.Task, req GenerationRequest) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildPrompt(task, req)},
	}
}

func buildPrompt(task models.Task, req GenerationRequest) string {
	switch task {
	case models.TaskRecommendVocabulary:
		return fmt.Sprintf(`请为主题"%s"推荐8-10个适合%s学生的英语词汇。
每个词汇请用以下格式：
单词 - 中文意思 - 例句`, req.Topic, req.Grade)
	case models.TaskRecommendSentences:
		return fmt.Sprintf(`请为主题"%s"推荐5个适合%s学生的英语写作句型。
每个句型请用以下格式：
句型 - 中文意思 - 例句`, req.Topic, req.Grade)
	case models.TaskEvaluateEssay:
		return fmt.Sprintf(`请评价这篇%s学生写的英语作文。
作文主题：%s
作文内容：
%s

请用以下格式回答：
总评分：X/100
内容：X/30
结构：X/25
词汇：X/25
语法：X/20
优点：
需要改进：
建议：`, req.Grade, req.Topic, req.Essay)
	default:
		return fmt.Sprintf(`请写一篇关于%s的英语作文范文：
年级：%s
要求：100-200字，适合学生阅读，有中文翻译

请用以下格式：
英语范文：[这里写英语作文]
中文翻译：[这里写中文翻译]`, req.Topic, req.Grade)
	}
}

// fallbackText is the offline answer for task. It depends only on its inputs.
func fallbackText(task models.Task, req GenerationRequest) string {
	switch task {
	case models.TaskRecommendVocabulary:
		return fallbackVocabulary(req)
	case models.TaskRecommendSentences:
		return fallbackSentences(req)
	case models.TaskEvaluateEssay:
		return fallbackEvaluation(req)
	default:
		return fallbackExample(req)
	}
}

func fallbackExample(req GenerationRequest) string {
	var b strings.Builder
	b.WriteString("英语范文：\n")
	fmt.Fprintf(&b, "%s\n\n", req.Topic)
	fmt.Fprintf(&b, "Today I want to write about %s. It is an important part of my life. ", req.Topic)
	b.WriteString("Every day I learn something new about it, and it makes me happy. ")
	b.WriteString("I like to share it with my family and my friends. ")
	fmt.Fprintf(&b, "I hope you enjoy reading about %s as much as I enjoy writing about it.\n\n", req.Topic)
	b.WriteString("中文翻译：\n")
	fmt.Fprintf(&b, "今天我想写一写%s。它是我生活中很重要的一部分。", req.Topic)
	b.WriteString("我每天都能从中学到新东西，这让我很开心。我喜欢和家人、朋友一起分享。")
	fmt.Fprintf(&b, "希望你读到关于%s的内容时，和我写它时一样开心。", req.Topic)
	return b.String()
}

func fallbackVocabulary(req GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "为主题\"%s\"推荐的词汇：\n", req.Topic)
	for _, v := range library.SearchVocabulary(req.Topic) {
		fmt.Fprintf(&b, "• %s - %s - %s\n", v.Word, v.Translation, v.ExampleSentence)
	}
	return strings.TrimRight(b.String(), "\n")
}

func fallbackSentences(req GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "为主题\"%s\"推荐的句型：\n", req.Topic)
	for _, p := range library.SearchSentencePatterns(req.Topic) {
		fmt.Fprintf(&b, "• %s - %s - %s\n", p.Pattern, p.Translation, p.Example)
	}
	return strings.TrimRight(b.String(), "\n")
}

func fallbackEvaluation(req GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "关于\"%s\"的作文评价\n\n", req.Topic)
	b.WriteString("优点：\n")
	b.WriteString("• 能够围绕主题展开写作，内容完整\n")
	b.WriteString("• 尝试使用了学过的词汇和句型\n\n")
	b.WriteString("需要改进：\n")
	b.WriteString("• 注意句子开头字母大写和句末标点\n")
	b.WriteString("• 可以加入更多细节，让文章更生动\n\n")
	b.WriteString("建议：\n")
	b.WriteString("• 写完后大声朗读一遍，检查语法和拼写\n")
	b.WriteString("• 多使用连接词，例如 first, then, finally, because")
	return b.String()
}
