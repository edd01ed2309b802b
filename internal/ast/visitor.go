package ast

// Visitor is implemented by every pass that walks the tree. Nodes dispatch
// through Accept; the visitor controls recursion into children.
type Visitor interface {
	VisitProgram(n *Program)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitConstantDeclaration(n *ConstantDeclaration)
	VisitStaticDeclaration(n *StaticDeclaration)
	VisitTraitDeclaration(n *TraitDeclaration)
	VisitImplDeclaration(n *ImplDeclaration)
	VisitBlockStatement(n *BlockStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitLetStatement(n *LetStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitContinueStatement(n *ContinueStatement)
	VisitIdentifier(n *Identifier)
	VisitIntegerLiteral(n *IntegerLiteral)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitPrefixExpression(n *PrefixExpression)
	VisitInfixExpression(n *InfixExpression)
	VisitCallExpression(n *CallExpression)
	VisitIfExpression(n *IfExpression)
	VisitLoopExpression(n *LoopExpression)
	VisitMatchExpression(n *MatchExpression)
	VisitConstBlockExpression(n *ConstBlockExpression)
}
