package roster

var answers = map[AnswerKind]string{
	AnswerFollowUps: `<p class="mb-2">Based on your current tasks, I recommend you follow up on:</p>
<ol class="list-decimal pl-5 mb-3 space-y-1">
	<li>Equipment request for Room 202 (overdue by 3 days)</li>
	<li>Patient complaint follow-up from Mr. Johnson in Room 215</li>
	<li>Schedule adjustment request from Sarah Chen</li>
</ol>
<p>Would you like me to prioritize these tasks or help you create a follow-up plan?</p>`,

	AnswerBurnout: `<p class="mb-2">I've identified 2 staff members showing burnout risk indicators:</p>
<ul class="list-disc pl-5 mb-3 space-y-1">
	<li><strong>Sarah Chen</strong> - Has worked 6 consecutive shifts, including 2 double shifts this week.</li>
	<li><strong>Michael Johnson</strong> - Recently experienced two code events and has requested schedule changes 3 times this month.</li>
</ul>
<p>Consider checking in with them individually. Would you like suggestions for supporting these team members?</p>`,

	AnswerPriorities: `<p class="mb-2">Based on urgency and importance, your top 3 priorities today should be:</p>
<ol class="list-decimal pl-5 mb-3 space-y-1">
	<li><strong>Staff burnout follow-up</strong> - Schedule brief check-ins with Sarah and Michael.</li>
	<li><strong>Complete overdue follow-up tasks</strong> - Especially the equipment request which impacts patient care.</li>
	<li><strong>Quarterly report progress</strong> - You need to complete at least 15% more by end of day to stay on track for Friday's deadline.</li>
</ol>
<p>Would you like help developing an action plan for any of these priorities?</p>`,

	AnswerDefault: `<p>I'm your nurse manager copilot. How can I assist you today? I can help with staffing analysis, burnout risk assessment, task prioritization, or compliance reporting.</p>`,
}
