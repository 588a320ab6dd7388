package utils

import "fmt"

// BuildPlanPrompt renders the career-plan prompt. The model is told to
// reject gibberish input with an {error, message} object and otherwise to
// answer with a plan object restricted to allow-listed article sources.
func BuildPlanPrompt(skills, goal string) string {
	return fmt.Sprintf(`
You are an AI career coach helping users upskill quickly.

The user has the following input:
- Skills: %s
- Career goal: %s

First, **validate the input**. If any of the following conditions are met:
- The skills or career goal is nonsensical, made-up, gibberish (e.g., "asdfg", "banana dancing", "zzxcv"), too vague, or unrelated to real-world careers or skills
- The career goal is not identifiable as a real profession or learning path

Then respond with the following JSON format:
{
"error": "Invalid input",
"message": "Please enter valid, real-world skills and a clear career goal."
}

---

If the input is valid, continue with the following:

1. Provide a **brief career summary**: Describe what the role involves, the industries it fits in, and typical responsibilities.
2. Explain the **future scope**: Mention demand trends, salary expectations, and why this role is promising.
3. Estimate a **probability (in %%)** of landing a job in this career goal within 6 months if the user completes the recommended learning resources (based on current market trends).

Then recommend **2-3 high-quality articles** from verified sources like:
- https://developer.mozilla.org
- https://www.freecodecamp.org
- https://www.w3schools.com
- https://realpython.com
- https://geeksforgeeks.org
- Make 100%% sure that they are valid pages

For each article resource, include:
- title
- brief summary (2-3 lines)
- link (must be a valid URL from the approved sources above)
- duration (in minutes or 'Varies' if unknown)
- topic
- recommended_next_step after this resource
- type: "article"

Output only a number followed by a percent sign, like "job_success_probability": "65%%"

**IMPORTANT: Respond ONLY with valid JSON. Do not include any explanation text before or after the JSON.**

Format the output as a **JSON object** like this:
{
"career_summary": "...",
"future_scope": "...",
"job_success_probability": "...",
"resources": [ ... list of 2-3 article resources ... ]
}
`, skills, goal)
}

// BuildTopicPrompt renders the prompt that asks for exactly five searchable
// video topics bridging the user's skills toward their goal.
func BuildTopicPrompt(skills, goal string) string {
	return fmt.Sprintf(`
Based on the user's skills: %s
And their career goal: %s

Generate 5 specific YouTube search topics that would help them learn the required skills.
Make the topics specific and searchable (e.g., "Python data structures tutorial", "React hooks beginner guide").

Respond with ONLY a JSON array of strings, like this:
["topic 1", "topic 2", "topic 3", "topic 4", "topic 5"]
`, skills, goal)
}
